package budget

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// rulesHeader is the rules file contract. Column order is fixed; readers
// reject anything else.
var rulesHeader = []string{
	"Category",
	"Initial Date",
	"Final Date",
	"Transaction Type",
	"Recurrence",
	"Recurrence Value",
	"Value",
}

// WriteRules writes rules as CSV: a header row, then one row per rule with
// dates in YYYY-MM-DD form and amounts in plain decimal notation. The output
// reads back with ReadRules into rules equal to the originals.
func WriteRules(w io.Writer, rules []ExpectedTransaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rulesHeader); err != nil {
		return fmt.Errorf("write rules header: %w", err)
	}
	for _, e := range rules {
		row := []string{
			e.Category,
			e.InitialDate.Format(DateLayout),
			e.FinalDate.Format(DateLayout),
			string(e.Type),
			string(e.Recurrence),
			strconv.Itoa(e.Every),
			e.Amount.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write rule %q: %w", e.Category, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRules parses a rules CSV written by WriteRules. Every row is validated;
// the first bad row fails the whole read with its line number.
func ReadRules(r io.Reader) ([]ExpectedTransaction, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read rules: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read rules header: %w", err)
	}
	if !slices.Equal(header, rulesHeader) {
		return nil, fmt.Errorf("read rules: unexpected header %v", header)
	}

	var rules []ExpectedTransaction
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rules: %w", err)
		}
		rule, err := parseRule(row)
		if err != nil {
			return nil, fmt.Errorf("read rules: line %d: %w", line, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func parseRule(row []string) (ExpectedTransaction, error) {
	initial, err := time.Parse(DateLayout, row[1])
	if err != nil {
		return ExpectedTransaction{}, fmt.Errorf("initial date: %w", err)
	}
	final, err := time.Parse(DateLayout, row[2])
	if err != nil {
		return ExpectedTransaction{}, fmt.Errorf("final date: %w", err)
	}
	typ, err := ParseTransactionType(row[3])
	if err != nil {
		return ExpectedTransaction{}, err
	}
	rec, err := ParseRecurrence(row[4])
	if err != nil {
		return ExpectedTransaction{}, err
	}
	every, err := strconv.Atoi(row[5])
	if err != nil {
		return ExpectedTransaction{}, fmt.Errorf("recurrence value: %w", err)
	}
	amount, err := decimal.NewFromString(row[6])
	if err != nil {
		return ExpectedTransaction{}, fmt.Errorf("value: %w", err)
	}
	return NewExpectedTransaction(row[0], initial, final, typ, rec, every, amount)
}
