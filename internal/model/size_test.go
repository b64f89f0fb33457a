package model_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/slok/ollama-total/internal/model"
)

func TestUnitBytes(t *testing.T) {
	tests := map[string]struct {
		unit     model.Unit
		expBytes int64
	}{
		"MB should be 10^6 bytes.": {unit: model.UnitMB, expBytes: 1_000_000},
		"GB should be 10^9 bytes.": {unit: model.UnitGB, expBytes: 1_000_000_000},
		"TB should be 10^12 bytes.": {unit: model.UnitTB, expBytes: 1_000_000_000_000},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(test.expBytes, int64(test.unit.Bytes()))
			assert.True(decimal.New(1, test.unit.Exponent()).Equal(decimal.NewFromInt(test.expBytes)))
			assert.NoError(test.unit.Validate())
		})
	}
}

func TestUnitValidate(t *testing.T) {
	err := model.Unit("KB").Validate()
	assert.True(t, errors.Is(err, model.ErrNotValid))
}

func TestSizeBytes(t *testing.T) {
	tests := map[string]struct {
		size     model.Size
		expBytes string
	}{
		"Decimal gigabytes should be converted exactly.": {
			size:     model.Size{Amount: decimal.RequireFromString("2.7"), Unit: model.UnitGB},
			expBytes: "2700000000",
		},
		"Integer megabytes should be converted exactly.": {
			size:     model.Size{Amount: decimal.RequireFromString("800"), Unit: model.UnitMB},
			expBytes: "800000000",
		},
		"Sub byte precision should be kept.": {
			size:     model.Size{Amount: decimal.RequireFromString("0.0000005"), Unit: model.UnitMB},
			expBytes: "0.5",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			exp := decimal.RequireFromString(test.expBytes)
			got := test.size.Bytes()
			assert.True(t, exp.Equal(got), "expected %s, got %s", exp, got)
		})
	}
}

func TestReportAdd(t *testing.T) {
	r := model.Report{}
	assert.True(t, r.TotalBytes.IsZero())

	r.Add(model.ModelSize{Name: "a", Size: model.Size{Amount: decimal.RequireFromString("0.1"), Unit: model.UnitGB}})
	r.Add(model.ModelSize{Name: "b", Size: model.Size{Amount: decimal.RequireFromString("0.2"), Unit: model.UnitGB}})

	assert.Len(t, r.Models, 2)
	assert.Equal(t, "300000000", r.TotalBytes.String())
}

func TestCommandError(t *testing.T) {
	tests := map[string]struct {
		err    *model.CommandError
		expMsg string
	}{
		"Without output only the status should be shown.": {
			err:    &model.CommandError{Command: "ollama list", ExitCode: 1},
			expMsg: "exit status 1",
		},
		"With output the trimmed output should be shown.": {
			err:    &model.CommandError{Command: "ollama list", ExitCode: 2, Output: "could not connect\n"},
			expMsg: "exit status 2: could not connect",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expMsg, test.err.Error())
			assert.ErrorIs(t, test.err, model.ErrCommandFailed)
		})
	}
}
