package finance_test

import (
	"testing"

	"github.com/finpanel/go-finance-client/finance"
	"github.com/stretchr/testify/require"
)

func TestToAPIDate(t *testing.T) {
	got, err := finance.ToAPIDate("31/01/2024")
	require.NoError(t, err)
	require.Equal(t, "2024-01-31", got)

	got, err = finance.ToAPIDate("")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = finance.ToAPIDate("2024-01-31")
	require.Error(t, err)

	_, err = finance.ToAPIDate("31/02/2024") // no February 31st
	require.Error(t, err)
}

func TestFromAPIDate(t *testing.T) {
	require.Equal(t, "31/01/2024", finance.FromAPIDate("2024-01-31"))

	// Already-display values and junk pass through untouched.
	require.Equal(t, "31/01/2024", finance.FromAPIDate("31/01/2024"))
	require.Equal(t, "soon", finance.FromAPIDate("soon"))
	require.Empty(t, finance.FromAPIDate(""))
}
