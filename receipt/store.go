package receipt

import "sync"

// Store holds receipts in memory for the lifetime of the process. Each receipt
// is mutated only under the store lock, so concurrent handlers stay isolated;
// reads hand out deep copies.
type Store struct {
	mu       sync.RWMutex
	receipts map[string]*Receipt
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{receipts: make(map[string]*Receipt)}
}

// Add registers a receipt with the store.
func (s *Store) Add(r Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := r.Clone()
	s.receipts[r.ID] = &clone
}

// Get returns a deep copy of the receipt, if present.
func (s *Store) Get(id string) (Receipt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.receipts[id]
	if !ok {
		return Receipt{}, false
	}
	return r.Clone(), true
}

// AddItem appends a default "New Item" line to the receipt.
func (s *Store) AddItem(receiptID string) (ReceiptItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.receipts[receiptID]
	if !ok {
		return ReceiptItem{}, false
	}
	item := NewItem()
	r.Items = append(r.Items, item)
	return item, true
}

// ItemUpdate carries the fields an edit may change; nil fields are left as is.
type ItemUpdate struct {
	Name      *string
	UnitPrice *float64
	Quantity  *int
}

// UpdateItem applies an edit to an item in place. Returns false if the receipt
// or item is unknown, or the update would violate price/quantity invariants.
func (s *Store) UpdateItem(receiptID, itemID string, update ItemUpdate) (ReceiptItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.receipts[receiptID]
	if !ok {
		return ReceiptItem{}, false
	}
	for i := range r.Items {
		if r.Items[i].ID != itemID {
			continue
		}
		if update.UnitPrice != nil && *update.UnitPrice < 0 {
			return ReceiptItem{}, false
		}
		if update.Quantity != nil && *update.Quantity < 1 {
			return ReceiptItem{}, false
		}
		if update.Name != nil {
			r.Items[i].Name = *update.Name
		}
		if update.UnitPrice != nil {
			r.Items[i].UnitPrice = *update.UnitPrice
		}
		if update.Quantity != nil {
			r.Items[i].Quantity = *update.Quantity
		}
		return r.Items[i], true
	}
	return ReceiptItem{}, false
}

// DeleteItem removes an item from the receipt. Returns false if the receipt or
// item is unknown.
func (s *Store) DeleteItem(receiptID, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.receipts[receiptID]
	if !ok {
		return false
	}
	for i := range r.Items {
		if r.Items[i].ID == itemID {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ExpandItems rewrites the receipt's items with every multi-quantity item
// expanded into unit items. Used when moving from editing to assignment.
func (s *Store) ExpandItems(receiptID string) ([]ReceiptItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.receipts[receiptID]
	if !ok {
		return nil, false
	}
	r.Items = ExpandItems(r.Items)
	items := make([]ReceiptItem, len(r.Items))
	copy(items, r.Items)
	return items, true
}

// AddParticipant adds a participant to the receipt's roster.
func (s *Store) AddParticipant(receiptID, name string, email, phoneNumber *string) (Participant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.receipts[receiptID]
	if !ok {
		return Participant{}, false
	}
	p := NewParticipant(name, email, phoneNumber)
	r.Participants = append(r.Participants, p)
	return p, true
}

// Assign bills the item to the participant. Unknown item ids are tolerated as
// a silent no-op (stale references from an expanded list are expected); an
// unknown receipt id returns false so callers can report it.
func (s *Store) Assign(receiptID, itemID, participantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.receipts[receiptID]
	if !ok {
		return false
	}
	r.Assign(itemID, participantID)
	return true
}

// Unassign removes the participant from the item. Same tolerance as Assign.
func (s *Store) Unassign(receiptID, itemID, participantID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.receipts[receiptID]
	if !ok {
		return false
	}
	r.Unassign(itemID, participantID)
	return true
}
