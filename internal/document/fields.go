package document

import (
	"fmt"

	"indiebyll/pkg/models"
)

// Field setters. Each one replaces exactly one field of the buffer and
// does nothing else: no recompute, no persistence, no coupled writes.

/* company & client identity */

func (s *State) SetCompanyName(v string)    { s.Party.CompanyName = v }
func (s *State) SetCompanyAddress(v string) { s.Party.CompanyAddress = v }
func (s *State) SetCompanyEmail(v string)   { s.Party.CompanyEmail = v }
func (s *State) SetCompanyPhone(v string)   { s.Party.CompanyPhone = v }
func (s *State) SetBrandColor(v string)     { s.Party.BrandColor = v }
func (s *State) SetClientName(v string)     { s.Party.ClientName = v }
func (s *State) SetClientAddress(v string)  { s.Party.ClientAddress = v }

/* document meta */

func (s *State) SetDocumentNumber(v string) { s.Meta.DocumentNumber = v }
func (s *State) SetIssueDate(v string)      { s.Meta.IssueDate = v }
func (s *State) SetDueDate(v string)        { s.Meta.DueDate = v }
func (s *State) SetServiceType(v string)    { s.Meta.ServiceType = v }
func (s *State) SetRecurring(v bool)        { s.Meta.Recurring = v }
func (s *State) SetNotes(v string)          { s.Meta.Notes = v }
func (s *State) SetAnnexureTitle(v string)  { s.Meta.Annexure.Title = v }
func (s *State) SetAnnexureBody(v string)   { s.Meta.Annexure.Body = v }

/* adjustments */

func (s *State) SetDiscountAmount(v float64)     { s.Adjustments.DiscountAmount = v }
func (s *State) SetTaxEnabled(v bool)            { s.Adjustments.TaxEnabled = v }
func (s *State) SetTaxRatePercent(v float64)     { s.Adjustments.TaxRatePercent = v }
func (s *State) SetPreviousBalanceDue(v float64) { s.Adjustments.PreviousBalanceDue = v }
func (s *State) SetAdvanceReceived(v float64)    { s.Adjustments.AdvanceReceived = v }

/* payment */

// SetPaymentMethod rejects unknown selector values instead of storing
// something the renderer cannot interpret.
func (s *State) SetPaymentMethod(v models.PaymentMethod) error {
	if !v.Valid() {
		return fmt.Errorf("unknown payment method %q (want bank, upi, both or none)", v)
	}
	s.Payment.Method = v
	return nil
}

func (s *State) SetBankName(v string)            { s.Payment.BankName = v }
func (s *State) SetAccountNumber(v string)       { s.Payment.AccountNumber = v }
func (s *State) SetRoutingCode(v string)         { s.Payment.RoutingCode = v }
func (s *State) SetUPIHandle(v string)           { s.Payment.UPIHandle = v }
func (s *State) SetSignatoryName(v string)       { s.Payment.SignatoryName = v }
func (s *State) SetIncludeSignatoryBlock(v bool) { s.Payment.IncludeSignatoryBlock = v }
func (s *State) SetUseTieredPricing(v bool)      { s.UseTieredPricing = v }
func (s *State) SetCurrencyCode(v string)        { s.CurrencyCode = v }
