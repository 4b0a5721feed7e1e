package state

import (
	"sync"
	"testing"
)

func TestStoreDispatchNotifiesSubscribersInOrder(t *testing.T) {
	store := NewStore()

	var order []int
	store.Subscribe(func(previous, current ApplicationState) {
		order = append(order, 1)
	})
	store.Subscribe(func(previous, current ApplicationState) {
		order = append(order, 2)
	})

	store.Dispatch(ChangeCityAction("Lisbon"))

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected subscribers notified in registration order, got %v", order)
	}
	if store.GetState().SelectedCity != "Lisbon" {
		t.Fatalf("expected state updated, got %q", store.GetState().SelectedCity)
	}
}

func TestStoreSubscriberSeesPreviousAndCurrent(t *testing.T) {
	store := NewStore()

	var gotPrevious, gotCurrent ApplicationState
	store.Subscribe(func(previous, current ApplicationState) {
		gotPrevious = previous
		gotCurrent = current
	})

	store.Dispatch(ChangeCityAction("Madrid"))

	if gotPrevious.SelectedCity != "" {
		t.Fatalf("expected empty previous city, got %q", gotPrevious.SelectedCity)
	}
	if gotCurrent.SelectedCity != "Madrid" {
		t.Fatalf("expected current city Madrid, got %q", gotCurrent.SelectedCity)
	}
}

func TestStoreUnsubscribeStopsNotifications(t *testing.T) {
	store := NewStore()

	calls := 0
	unsubscribe := store.Subscribe(func(previous, current ApplicationState) {
		calls++
	})

	store.Dispatch(ToggleUnitAction())
	unsubscribe()
	store.Dispatch(ToggleUnitAction())

	if calls != 1 {
		t.Fatalf("expected exactly one notification, got %d", calls)
	}
}

func TestStoreSubscriberMayDispatch(t *testing.T) {
	store := NewStore()

	// A subscriber reacting to a city change by dispatching again must not
	// deadlock, notifications run outside the store lock.
	store.Subscribe(func(previous, current ApplicationState) {
		if current.SelectedCity != previous.SelectedCity && current.ErrorMessage == nil {
			store.Dispatch(SetErrorAction("reacting"))
		}
	})

	store.Dispatch(ChangeCityAction("Rome"))

	s := store.GetState()
	if s.ErrorMessage == nil || *s.ErrorMessage != "reacting" {
		t.Fatalf("expected reactive dispatch to land, got %v", s.ErrorMessage)
	}
}

func TestStoreConcurrentDispatches(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(ChangeRefreshRateAction(10))
		}()
	}
	wg.Wait()

	if store.GetState().RefreshRateMinutes != 10 {
		t.Fatalf("expected refresh rate 10, got %d", store.GetState().RefreshRateMinutes)
	}
}
