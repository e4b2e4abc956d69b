package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_MarshalKeepsTwoDecimals(t *testing.T) {
	b, err := json.Marshal(struct {
		Price Money `json:"price"`
	}{MustMoney("1499")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"1499.00"}`, string(b))
}

func TestMoney_UnmarshalStringOrNumber(t *testing.T) {
	var v struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"2999.00","b":499.5}`), &v))
	assert.Equal(t, "2999.00", v.A.String())
	assert.Equal(t, "499.50", v.B.String())
}

func TestMoney_ScanAndValue(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan([]byte("4997.00")))
	assert.Equal(t, "4997.00", m.String())

	v, err := MustMoney("40").Value()
	require.NoError(t, err)
	assert.Equal(t, "40.00", v)
}

func TestMoney_Storable(t *testing.T) {
	assert.True(t, MustMoney("0").Storable())
	assert.True(t, MustMoney("1499.5").Storable())
	assert.True(t, MustMoney("1499.000").Storable())
	assert.True(t, MaxMoney.Storable())
	assert.False(t, MustMoney("-0.01").Storable())
	assert.False(t, MustMoney("1499.999").Storable())
	assert.False(t, MustMoney("100000000").Storable())
}

func TestMoney_Arithmetic(t *testing.T) {
	total := MustMoney("1499.00").Add(MustMoney("2999.00")).Add(MustMoney("499.00"))
	assert.Equal(t, "4997.00", total.String())
	assert.Equal(t, "2998.00", MustMoney("1499").Mul(2).String())
	assert.Equal(t, "0.00", ZeroMoney().String())
}
