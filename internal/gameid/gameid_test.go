package gameid

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerate(t *testing.T) {
	id := Generate()

	if len(id) != Length {
		t.Errorf("expected %d characters, got %d", Length, len(id))
	}

	if err := Validate(id); err != nil {
		t.Errorf("generated ID failed validation: %v", err)
	}
}

func TestGenerateUnique(t *testing.T) {
	ids := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := Generate()
		if ids[id] {
			t.Errorf("duplicate ID generated: %s", id)
		}
		ids[id] = true
	}
}

func TestGenerateTimeSorted(t *testing.T) {
	var ids []string

	for i := 0; i < 10; i++ {
		ids = append(ids, Generate())
		time.Sleep(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		id   uuid.UUID
		want string
	}{
		{"zero", uuid.UUID{}, "00000000000000000000000000"},
		{"max", uuid.UUID{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "7zzzzzzzzzzzzzzzzzzzzzzzzz"},
		{"one", uuid.UUID{15: 0x01}, "00000000000000000000000001"},
		{"low byte", uuid.UUID{15: 0x20}, "00000000000000000000000010"},
		{"straddles words", uuid.UUID{7: 0x01}, "0000000000000g000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.id); got != tt.want {
				t.Errorf("Encode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGeneratorSource(t *testing.T) {
	fixed := uuid.UUID{15: 0x01}
	g := NewGenerator(func() (uuid.UUID, error) { return fixed, nil })

	if got := g.Generate(); got != "00000000000000000000000001" {
		t.Errorf("unexpected id %s", got)
	}

	failing := NewGenerator(func() (uuid.UUID, error) { return uuid.Nil, errors.New("no entropy") })
	defer func() {
		if recover() == nil {
			t.Error("expected panic from failing source")
		}
	}()
	failing.Generate()
}

func TestShort(t *testing.T) {
	if got := Short("0123456789abcdefghjkmnpqrs"); got != "jkmnpqrs" {
		t.Errorf("Short() = %s", got)
	}
	if got := Short("abc"); got != "abc" {
		t.Errorf("Short() = %s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid ID", "01h5n0et5q6mt3v7ms1234abcd", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"first char too high", "81h5n0et5q6mt3v7ms1234abcd", true},
		{"invalid character", "01h5n0et5q6mt3v7ms1234abci", true},
		{"uppercase", "01H5N0ET5Q6MT3V7MS1234ABCD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
