package store

import "chainfly-client/domain/records"

// Action is one state transition a store can undergo. The set of variants
// is sealed; Apply dispatches on the concrete type, so there is no dynamic
// action-name lookup to get wrong.
type Action[R records.Record] interface {
	isAction()
}

// SetAll replaces the store's contents with Records
type SetAll[R records.Record] struct {
	Records []R
}

// Add inserts or overwrites Record by id
type Add[R records.Record] struct {
	Record R
}

// Update overwrites Record by id (update-or-insert, same as Add)
type Update[R records.Record] struct {
	Record R
}

// Delete removes the record with ID
type Delete[R records.Record] struct {
	ID string
}

func (SetAll[R]) isAction() {}
func (Add[R]) isAction()    {}
func (Update[R]) isAction() {}
func (Delete[R]) isAction() {}

// Apply performs one action against the store. Last write wins by id for
// every variant.
func Apply[R records.Record](s *Store[R], action Action[R]) {
	switch a := action.(type) {
	case SetAll[R]:
		s.SetAll(a.Records)
	case Add[R]:
		s.Add(a.Record)
	case Update[R]:
		s.Update(a.Record)
	case Delete[R]:
		s.Delete(a.ID)
	}
}
