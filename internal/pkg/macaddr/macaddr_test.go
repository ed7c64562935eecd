package macaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"AA:BB:CC:DD:EE:FF", "aa:bb:cc:dd:ee:ff"},
		{"aa-bb-cc-dd-ee-ff", "aa:bb:cc:dd:ee:ff"},
		{"AABB.CCDD.EEFF", "aa:bb:cc:dd:ee:ff"},
		{"aabbccddeeff", "aa:bb:cc:dd:ee:ff"},
		{"  Aa:bB:Cc:dD:eE:Ff  ", "aa:bb:cc:dd:ee:ff"},
		{"0:1a:2:3b:4:5c", "00:1a:02:3b:04:5c"},
		{"aa:bb-cc.dd ee:ff", "aa:bb:cc:dd:ee:ff"},
		{"", ""},
		{"not-a-mac", "aac"},
		{"12:34", "1234"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.input), "Normalize(%q)", c.input)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"AA-BB-CC-DD-EE-FF", "0:1a:2:3b:4:5c", "garbage", ""}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize should be idempotent for %q", in)
	}
}

func TestEqual_CaseAndDelimiterInsensitive(t *testing.T) {
	variants := []string{
		"DE:AD:BE:EF:00:01",
		"de-ad-be-ef-00-01",
		"dead.beef.0001",
		"DEADBEEF0001",
		"de:ad:be:ef:0:1",
	}
	for _, a := range variants {
		for _, b := range variants {
			assert.True(t, Equal(a, b), "Equal(%q, %q)", a, b)
		}
	}

	assert.False(t, Equal("de:ad:be:ef:00:01", "de:ad:be:ef:00:02"))
}

func TestIsValid(t *testing.T) {
	valid := []string{"aa:bb:cc:dd:ee:ff", "AABBCCDDEEFF", "0:1:2:3:4:5"}
	invalid := []string{"", "aa:bb:cc", "zz:zz:zz:zz:zz:zz", "aabbccddeeff00"}
	for _, v := range valid {
		assert.True(t, IsValid(v), "IsValid(%q)", v)
	}
	for _, v := range invalid {
		assert.False(t, IsValid(v), "IsValid(%q)", v)
	}
}
