package seat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeat_Validate(t *testing.T) {
	tests := []struct {
		name    string
		seat    Seat
		wantErr error
	}{
		{"正常な座席", New(1, 1), nil},
		{"大きな座標の座席", New(100, 250), nil},
		{"行番号が0", New(0, 1), ErrInvalidRow},
		{"行番号が負", New(-3, 1), ErrInvalidRow},
		{"座席番号が0", New(1, 0), ErrInvalidNumber},
		{"座席番号が負", New(1, -10), ErrInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.seat.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSeat_Equal(t *testing.T) {
	assert.True(t, New(1, 2).Equal(New(1, 2)))
	assert.False(t, New(1, 2).Equal(New(2, 1)))
	assert.False(t, New(1, 2).Equal(New(1, 3)))
}

func TestSeat_String(t *testing.T) {
	assert.Equal(t, "3-12", New(3, 12).String())
}

func TestValidateSet(t *testing.T) {
	tests := []struct {
		name    string
		seats   []Seat
		wantErr error
	}{
		{"1席", []Seat{New(1, 1)}, nil},
		{"複数席", []Seat{New(1, 1), New(1, 2), New(2, 1)}, nil},
		{"空の座席リスト", []Seat{}, ErrSeatsRequired},
		{"nilの座席リスト", nil, ErrSeatsRequired},
		{"重複した座席", []Seat{New(1, 1), New(1, 2), New(1, 1)}, ErrDuplicateSeat},
		{"不正な座席を含む", []Seat{New(1, 1), New(0, 2)}, ErrInvalidRow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSet(tt.seats)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
