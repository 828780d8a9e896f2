package tasks

import (
	"slices"
	"sync"
)

// IDSet множество идентификаторов заказов. Toggle не изменяет исходное множество.
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs возвращает элементы в отсортированном виде.
func (s IDSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s IDSet) Clone() IDSet {
	c := make(IDSet, len(s)+1)
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

func Toggle(s IDSet, id string) IDSet {
	next := s.Clone()
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}

// Expansion хранит раскрытые карточки заказов и, отдельно, раскрытые списки
// товаров. Живёт ровно столько, сколько сессия представления.
type Expansion struct {
	mu       sync.RWMutex
	cards    IDSet
	products IDSet
}

func NewExpansion() *Expansion {
	return &Expansion{
		cards:    IDSet{},
		products: IDSet{},
	}
}

// ToggleCard возвращает новое состояние карточки.
func (e *Expansion) ToggleCard(orderID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cards = Toggle(e.cards, orderID)
	return e.cards.Has(orderID)
}

func (e *Expansion) ToggleProducts(orderID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.products = Toggle(e.products, orderID)
	return e.products.Has(orderID)
}

func (e *Expansion) CardExpanded(orderID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cards.Has(orderID)
}

func (e *Expansion) ProductsExpanded(orderID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.products.Has(orderID)
}

func (e *Expansion) Cards() IDSet {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cards.Clone()
}

func (e *Expansion) Products() IDSet {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.products.Clone()
}

func (e *Expansion) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cards = IDSet{}
	e.products = IDSet{}
}
