// Package export writes CSV snapshots of the in-memory bank state.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/pocketbank-dev/pocketbank/internal/model"
)

const (
	numAccountFields = 5
	colAccountID     = 0
	colAccountName   = 1
	colAccountType   = 2
	colBalance       = 3
	colSubtitle      = 4
)

// AccountsHeader is the header row of an accounts snapshot.
var AccountsHeader = []string{"account_id", "account_name", "account_type", "balance", "subtitle"}

// WriteAccounts writes accounts as CSV with a header row.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(AccountsHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadAccounts reads an accounts snapshot.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numAccountFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	accounts := make([]model.Account, 0, len(records)-1)
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// MarshalAccount converts an Account to a CSV row. Balances keep two
// decimal places.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numAccountFields)
	row[colAccountID] = acct.ID
	row[colAccountName] = acct.Name
	row[colAccountType] = string(acct.Type)
	row[colBalance] = acct.Balance.StringFixed(2)
	row[colSubtitle] = acct.Subtitle
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numAccountFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numAccountFields, len(record))
	}

	typ := model.AccountType(record[colAccountType])
	if !typ.Valid() {
		return model.Account{}, fmt.Errorf("unknown account type %q", record[colAccountType])
	}
	bal, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	return model.Account{
		ID:       record[colAccountID],
		Name:     record[colAccountName],
		Type:     typ,
		Balance:  bal,
		Subtitle: record[colSubtitle],
	}, nil
}
