package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType identifies a contribution account category
type AccountType string

const (
	Account403bTraditional    AccountType = "403b_traditional"
	Account403bRoth           AccountType = "403b_roth"
	Account457bTraditional    AccountType = "457b_traditional"
	Account457bRoth           AccountType = "457b_roth"
	Account401aEmployee       AccountType = "401a_employee"
	Account401aEmployer       AccountType = "401a_employer"
	AccountSolo401kEmployee   AccountType = "solo_401k_employee"
	AccountSolo401kEmployer   AccountType = "solo_401k_employer"
	AccountSEPIRA             AccountType = "sep_ira"
	AccountSIMPLEIRA          AccountType = "simple_ira"
	AccountTraditionalIRA     AccountType = "traditional_ira"
	AccountRothIRA            AccountType = "roth_ira"
	AccountHSA                AccountType = "hsa"
	AccountFSA                AccountType = "fsa"
	Account529Plan            AccountType = "529_plan"
	AccountESA                AccountType = "esa"
	AccountTaxableBrokerage   AccountType = "taxable_brokerage"
)

// AccountCapabilities describes the tax treatment of a contribution category
type AccountCapabilities struct {
	DisplayName string
	// ReducesAGI marks pre-tax categories that lower federal AGI dollar for dollar
	ReducesAGI bool
	// StateDeductible marks categories eligible for the state plan deduction,
	// which is capped separately from the contribution amount
	StateDeductible bool
}

// accountRegistry is the fixed set of supported contribution categories.
// Capability flags are static configuration, not runtime state.
var accountRegistry = map[AccountType]AccountCapabilities{
	Account403bTraditional:  {DisplayName: "403(b) Traditional", ReducesAGI: true},
	Account403bRoth:         {DisplayName: "403(b) Roth"},
	Account457bTraditional:  {DisplayName: "457(b) Traditional", ReducesAGI: true},
	Account457bRoth:         {DisplayName: "457(b) Roth"},
	Account401aEmployee:     {DisplayName: "401(a) Employee", ReducesAGI: true},
	Account401aEmployer:     {DisplayName: "401(a) Employer"},
	AccountSolo401kEmployee: {DisplayName: "Solo 401(k) Employee", ReducesAGI: true},
	AccountSolo401kEmployer: {DisplayName: "Solo 401(k) Employer"},
	AccountSEPIRA:           {DisplayName: "SEP IRA", ReducesAGI: true},
	AccountSIMPLEIRA:        {DisplayName: "SIMPLE IRA", ReducesAGI: true},
	AccountTraditionalIRA:   {DisplayName: "Traditional IRA", ReducesAGI: true},
	AccountRothIRA:          {DisplayName: "Roth IRA"},
	AccountHSA:              {DisplayName: "HSA", ReducesAGI: true},
	AccountFSA:              {DisplayName: "FSA", ReducesAGI: true},
	Account529Plan:          {DisplayName: "529 Plan", StateDeductible: true},
	AccountESA:              {DisplayName: "ESA"},
	AccountTaxableBrokerage: {DisplayName: "Taxable Brokerage"},
}

// AllAccountTypes returns every supported account category in a stable display order
func AllAccountTypes() []AccountType {
	return []AccountType{
		Account403bTraditional,
		Account403bRoth,
		Account457bTraditional,
		Account457bRoth,
		Account401aEmployee,
		Account401aEmployer,
		AccountSolo401kEmployee,
		AccountSolo401kEmployer,
		AccountSEPIRA,
		AccountSIMPLEIRA,
		AccountTraditionalIRA,
		AccountRothIRA,
		AccountHSA,
		AccountFSA,
		Account529Plan,
		AccountESA,
		AccountTaxableBrokerage,
	}
}

// Capabilities returns the capability flags for an account type
func (a AccountType) Capabilities() (AccountCapabilities, bool) {
	caps, ok := accountRegistry[a]
	return caps, ok
}

// DisplayName returns the human-readable name for an account type
func (a AccountType) DisplayName() string {
	if caps, ok := accountRegistry[a]; ok {
		return caps.DisplayName
	}
	return string(a)
}

// IsValid reports whether the account type is a known category
func (a AccountType) IsValid() bool {
	_, ok := accountRegistry[a]
	return ok
}

// ContributionSet maps account categories to annual contribution amounts
type ContributionSet map[AccountType]decimal.Decimal

// Total returns the sum of all contributions
func (cs ContributionSet) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range cs {
		total = total.Add(amount)
	}
	return total
}

// PreTaxTotal returns the sum of contributions in AGI-reducing categories
func (cs ContributionSet) PreTaxTotal() decimal.Decimal {
	total := decimal.Zero
	for account, amount := range cs {
		if caps, ok := accountRegistry[account]; ok && caps.ReducesAGI {
			total = total.Add(amount)
		}
	}
	return total
}

// StateDeduction returns the state plan deduction: the state-deductible
// contribution amount capped at the configured ceiling
func (cs ContributionSet) StateDeduction(cap decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for account, amount := range cs {
		if caps, ok := accountRegistry[account]; ok && caps.StateDeductible {
			total = total.Add(amount)
		}
	}
	return decimal.Min(total, cap)
}

// Ordered returns the contributions as (account, amount) pairs in display order,
// skipping zero entries
func (cs ContributionSet) Ordered() []ContributionEntry {
	entries := make([]ContributionEntry, 0, len(cs))
	for _, account := range AllAccountTypes() {
		amount, ok := cs[account]
		if !ok || amount.IsZero() {
			continue
		}
		entries = append(entries, ContributionEntry{Account: account, Amount: amount})
	}
	return entries
}

// ContributionEntry pairs an account category with its annual amount
type ContributionEntry struct {
	Account AccountType     `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}
