package event

import "testing"

type countingListener struct {
	got []Event
}

func (c *countingListener) OnEvent(e Event) {
	c.got = append(c.got, e)
}

func TestDispatchReachesSubscribersOfType(t *testing.T) {
	d := NewDispatcher()
	stock := &countingListener{}
	placed := &countingListener{}
	d.Subscribe(StockChanged, stock)
	d.Subscribe(TilePlaced, placed)

	d.Dispatch(Event{Type: StockChanged, Data: StockChange{Name: "Mirror", Delta: -1, Count: 2}})

	if len(stock.got) != 1 {
		t.Fatalf("Expected 1 stock event, got %d", len(stock.got))
	}
	if change := stock.got[0].Data.(StockChange); change.Count != 2 {
		t.Errorf("Expected count 2, got %d", change.Count)
	}
	if len(placed.got) != 0 {
		t.Errorf("Expected no placement events, got %d", len(placed.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(TileReturned, l)
	d.Unsubscribe(TileReturned, l)

	d.Dispatch(Event{Type: TileReturned})

	if len(l.got) != 0 {
		t.Errorf("Expected no events after unsubscribe, got %d", len(l.got))
	}
}

func TestListenCancel(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	cancel := d.Listen(TileHovered, func(Event) { calls++ })

	d.Dispatch(Event{Type: TileHovered})
	cancel()
	d.Dispatch(Event{Type: TileHovered})

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: LevelLoaded}) // must not panic
}
