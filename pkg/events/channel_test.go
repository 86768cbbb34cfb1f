package events_test

import (
	"testing"

	"github.com/aretw0/collage/pkg/events"
	"github.com/stretchr/testify/assert"
)

func TestChannel_OrderedDelivery(t *testing.T) {
	var ch events.Channel[int]
	var got []string

	ch.Subscribe(func(v int) { got = append(got, "a") })
	ch.Subscribe(func(v int) { got = append(got, "b") })
	ch.Subscribe(func(v int) { got = append(got, "c") })

	n := ch.Publish(1)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestChannel_Cancel(t *testing.T) {
	var ch events.Channel[string]
	count := 0
	cancel := ch.Subscribe(func(string) { count++ })

	ch.Publish("x")
	cancel()
	cancel()
	ch.Publish("y")

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, ch.Len())
}

func TestChannel_SubscribeDuringDispatch(t *testing.T) {
	var ch events.Channel[int]
	var late []int

	ch.Subscribe(func(v int) {
		if v == 1 {
			ch.Subscribe(func(v int) { late = append(late, v) })
		}
	})

	ch.Publish(1)
	assert.Empty(t, late, "subscriber added mid-dispatch must not see the current value")

	ch.Publish(2)
	assert.Equal(t, []int{2}, late)
}

func TestChannel_UnsubscribeDuringDispatch(t *testing.T) {
	var ch events.Channel[int]
	var cancelSecond events.CancelFunc
	secondCalls := 0

	ch.Subscribe(func(int) { cancelSecond() })
	cancelSecond = ch.Subscribe(func(int) { secondCalls++ })
	thirdCalls := 0
	ch.Subscribe(func(int) { thirdCalls++ })

	n := ch.Publish(1)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, secondCalls)
	assert.Equal(t, 1, thirdCalls)
}

func TestChannel_NilHandler(t *testing.T) {
	var ch events.Channel[int]
	cancel := ch.Subscribe(nil)
	cancel()
	assert.Equal(t, 0, ch.Publish(1))
}
