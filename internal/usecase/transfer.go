package usecase

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"ngram/internal/adapter/fs"
	"ngram/internal/domain"
	"ngram/internal/port"
)

// TransferUseCase moves model tables in and out of the store as
// tab-separated "unit<TAB>logprob" rows.
type TransferUseCase struct {
	store port.ModelStore
}

func NewTransferUseCase(store port.ModelStore) *TransferUseCase {
	return &TransferUseCase{store: store}
}

// Entry is one table row.
type Entry struct {
	Unit    string  `json:"unit"`
	LogProb float64 `json:"logprob"`
}

// Vocab returns the entries of the named model from most to least likely,
// ties broken by unit.
func (u *TransferUseCase) Vocab(name string) ([]Entry, error) {
	model, err := u.store.GetModel(name)
	if err != nil {
		return nil, err
	}
	return SortedEntries(model.Table), nil
}

// SortedEntries lists table entries by descending probability.
func SortedEntries(table domain.ProbabilityTable) []Entry {
	entries := make([]Entry, 0, len(table))
	for unit, p := range table {
		entries = append(entries, Entry{Unit: unit, LogProb: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].LogProb != entries[j].LogProb {
			return entries[i].LogProb > entries[j].LogProb
		}
		return entries[i].Unit < entries[j].Unit
	})
	return entries
}

// Export writes the named model as TSV.
func (u *TransferUseCase) Export(name string, w io.Writer) (int, error) {
	entries, err := u.Vocab(name)
	if err != nil {
		return 0, err
	}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Unit, strconv.FormatFloat(e.LogProb, 'g', -1, 64)}
	}
	if err := fs.WriteTSV(w, rows); err != nil {
		return 0, fmt.Errorf("failed to write model %s: %w", name, err)
	}
	return len(rows), nil
}

// Import reads TSV rows into a new model described by info and stores it.
// Every row must hold a unit and a finite, non-positive log probability.
func (u *TransferUseCase) Import(r io.Reader, info domain.ModelInfo) (domain.Model, error) {
	if info.Name == "" {
		return domain.Model{}, fmt.Errorf("model name is required")
	}
	if _, err := domain.ParseOrder(string(info.Order)); err != nil {
		return domain.Model{}, err
	}
	if _, err := domain.ParseLanguage(string(info.Language)); err != nil {
		return domain.Model{}, err
	}

	rows, err := fs.ReadTSV(r)
	if err != nil {
		return domain.Model{}, fmt.Errorf("failed to read table: %w", err)
	}

	table := make(domain.ProbabilityTable, len(rows))
	for i, row := range rows {
		if len(row) != 2 || row[0] == "" {
			return domain.Model{}, fmt.Errorf("row %d: %w: want unit and logprob", i+1, domain.ErrMalformedInput)
		}
		p, err := strconv.ParseFloat(row[1], 64)
		if err != nil || p > 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return domain.Model{}, fmt.Errorf("row %d: %w: bad logprob %q", i+1, domain.ErrMalformedInput, row[1])
		}
		table[row[0]] = p
	}

	info.Entries = len(table)
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now().UTC()
	}
	model := domain.Model{ModelInfo: info, Table: table}
	if err := u.store.PutModel(model); err != nil {
		return domain.Model{}, fmt.Errorf("failed to store model: %w", err)
	}
	return model, nil
}
