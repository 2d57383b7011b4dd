package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountTypeCapabilities(t *testing.T) {
	tests := []struct {
		account         AccountType
		reducesAGI      bool
		stateDeductible bool
	}{
		{Account403bTraditional, true, false},
		{Account403bRoth, false, false},
		{Account457bTraditional, true, false},
		{AccountHSA, true, false},
		{AccountFSA, true, false},
		{Account529Plan, false, true},
		{AccountRothIRA, false, false},
		{AccountTaxableBrokerage, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.account), func(t *testing.T) {
			caps, ok := tt.account.Capabilities()
			require.True(t, ok)
			assert.Equal(t, tt.reducesAGI, caps.ReducesAGI)
			assert.Equal(t, tt.stateDeductible, caps.StateDeductible)
		})
	}
}

func TestAccountTypeIsValid(t *testing.T) {
	assert.True(t, Account403bTraditional.IsValid())
	assert.False(t, AccountType("crypto_wallet").IsValid())
}

func TestAllAccountTypesRegistered(t *testing.T) {
	for _, account := range AllAccountTypes() {
		assert.True(t, account.IsValid(), "account %s missing from registry", account)
	}
	assert.Len(t, AllAccountTypes(), len(accountRegistry))
}

func TestContributionSetTotals(t *testing.T) {
	set := ContributionSet{
		Account403bTraditional: decimal.NewFromInt(15000),
		AccountRothIRA:         decimal.NewFromInt(7000),
		AccountHSA:             decimal.NewFromInt(4000),
		Account529Plan:         decimal.NewFromInt(6000),
	}

	assert.True(t, set.Total().Equal(decimal.NewFromInt(32000)))
	assert.True(t, set.PreTaxTotal().Equal(decimal.NewFromInt(19000)))
}

func TestContributionSetStateDeduction(t *testing.T) {
	cap := decimal.NewFromInt(4000)

	t.Run("capped", func(t *testing.T) {
		set := ContributionSet{Account529Plan: decimal.NewFromInt(6000)}
		assert.True(t, set.StateDeduction(cap).Equal(cap))
	})

	t.Run("below cap", func(t *testing.T) {
		set := ContributionSet{Account529Plan: decimal.NewFromInt(2500)}
		assert.True(t, set.StateDeduction(cap).Equal(decimal.NewFromInt(2500)))
	})

	t.Run("no deductible contributions", func(t *testing.T) {
		set := ContributionSet{AccountRothIRA: decimal.NewFromInt(7000)}
		assert.True(t, set.StateDeduction(cap).IsZero())
	})
}

func TestContributionSetOrdered(t *testing.T) {
	set := ContributionSet{
		Account529Plan:         decimal.NewFromInt(5000),
		Account403bTraditional: decimal.NewFromInt(15000),
		AccountRothIRA:         decimal.Zero,
	}

	entries := set.Ordered()
	require.Len(t, entries, 2, "zero entries are skipped")
	assert.Equal(t, Account403bTraditional, entries[0].Account)
	assert.Equal(t, Account529Plan, entries[1].Account)
}
