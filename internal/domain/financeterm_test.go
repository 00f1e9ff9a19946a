package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyList_Value(t *testing.T) {
	policies := PolicyList{
		{Premium: 100, TaxFee: 10},
		{Premium: 150, TaxFee: 15},
	}

	value, err := policies.Value()

	assert.NoError(t, err)
	assert.Equal(t, `[{"premium":100,"taxFee":10},{"premium":150,"taxFee":15}]`, value)
}

func TestPolicyList_Scan(t *testing.T) {
	blob := `[{"premium":100,"taxFee":10},{"premium":150,"taxFee":15}]`
	expected := PolicyList{
		{Premium: 100, TaxFee: 10},
		{Premium: 150, TaxFee: 15},
	}

	tests := []struct {
		name string
		src  interface{}
	}{
		{name: "from string", src: blob},
		{name: "from bytes", src: []byte(blob)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var policies PolicyList
			err := policies.Scan(tt.src)

			assert.NoError(t, err)
			assert.Equal(t, expected, policies)
		})
	}
}

func TestPolicyList_ScanNil(t *testing.T) {
	policies := PolicyList{{Premium: 1, TaxFee: 1}}
	err := policies.Scan(nil)

	assert.NoError(t, err)
	assert.Nil(t, policies)
}

func TestPolicyList_ScanUnsupportedType(t *testing.T) {
	var policies PolicyList
	err := policies.Scan(42)

	assert.Error(t, err)
}

func TestPolicyList_RoundTripPreservesOrder(t *testing.T) {
	original := PolicyList{
		{Premium: 3, TaxFee: 30},
		{Premium: 1, TaxFee: 10},
		{Premium: 2, TaxFee: 20},
	}

	value, err := original.Value()
	assert.NoError(t, err)

	var decoded PolicyList
	assert.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}
