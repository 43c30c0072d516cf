package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		in      string
		want    ContentType
		wantErr bool
	}{
		{in: "", want: ContentPlain},
		{in: "plain", want: ContentPlain},
		{in: "Bank-Card", want: ContentBankCard},
		{in: "bank_card", want: ContentBankCard},
		{in: " national_id ", want: ContentNationalID},
		{in: "id_card", want: ContentNationalID},
		{in: "PHONE", want: ContentPhone},
		{in: "iban", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseContentType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentType_TextRoundTrip(t *testing.T) {
	for _, ct := range []ContentType{ContentPlain, ContentBankCard, ContentNationalID, ContentPhone} {
		text, err := ct.MarshalText()
		require.NoError(t, err)
		var back ContentType
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, ct, back)
	}
	assert.Equal(t, "ContentType(9)", ContentType(9).String())
}

func TestContentType_Accepts(t *testing.T) {
	assert.True(t, ContentPlain.Accepts('.'))
	assert.False(t, ContentBankCard.Accepts('.'))
	assert.False(t, ContentPhone.Accepts('a'))
	assert.True(t, ContentNationalID.Accepts('X'))
	assert.True(t, ContentNationalID.Accepts('x'))
	for _, ct := range []ContentType{ContentPlain, ContentBankCard, ContentNationalID, ContentPhone} {
		assert.True(t, ct.Accepts('7'), ct.String())
		assert.False(t, ct.Accepts(' '), ct.String())
		assert.False(t, ct.Accepts('٣'), ct.String())
	}
}

func TestEditEvent(t *testing.T) {
	ev := EditEvent{Start: 3, Removed: 1}
	assert.True(t, ev.IsDeletion())
	assert.False(t, ev.IsNoop())
	assert.Equal(t, 3, ev.End())
	assert.True(t, EditEvent{Start: 2}.IsNoop())
	assert.Equal(t, 5, EditEvent{Start: 2, Inserted: 3}.End())
}
