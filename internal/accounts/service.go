package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/textkey"
)

// File is the chart of accounts path relative to a workspace root.
const File = "accounts/chart-of-accounts.csv"

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	items     []*model.LineItem
	byID      map[string]*model.LineItem
	byAccount map[string]*model.LineItem
}

// NewService creates a Service from a slice of line items. When two items
// share an account number the first one wins the account lookup.
func NewService(items []*model.LineItem) *Service {
	s := &Service{
		items:     items,
		byID:      make(map[string]*model.LineItem, len(items)),
		byAccount: make(map[string]*model.LineItem, len(items)),
	}
	for _, it := range items {
		s.byID[it.ID] = it
		key := textkey.AccountKey(it.Account)
		if key == "" {
			continue
		}
		if _, ok := s.byAccount[key]; !ok {
			s.byAccount[key] = it
		}
	}
	return s
}

// Load reads chart-of-accounts.csv from a workspace root and returns a Service.
// A missing file yields an empty chart.
func Load(root string) (*Service, error) {
	path := filepath.Join(root, File)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	items, err := ReadItems(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(items), nil
}

// All returns all line items in file order.
func (s *Service) All() []*model.LineItem {
	return s.items
}

// Len returns the number of line items.
func (s *Service) Len() int {
	return len(s.items)
}

// Get returns a line item by ID.
func (s *Service) Get(id string) (*model.LineItem, bool) {
	it, ok := s.byID[id]
	return it, ok
}

// ByAccount returns the line item for a ledger account number. Dots and
// surrounding blanks are ignored, so "3.1.01" matches "3101".
func (s *Service) ByAccount(account string) (*model.LineItem, bool) {
	it, ok := s.byAccount[textkey.AccountKey(account)]
	return it, ok
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(root string) error {
	dir := filepath.Join(root, filepath.Dir(File))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(filepath.Join(root, File))
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteItems(f, s.items); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
