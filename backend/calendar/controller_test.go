package calendar

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habittracker/backend/progress"
)

// fakeTransport records requests and replies with a scripted response.
type fakeTransport struct {
	requests []UpdateRequest
	reply    func(req UpdateRequest) (*UpdateResponse, error)
}

func (f *fakeTransport) UpdateDay(_ context.Context, _ uint, req UpdateRequest) (*UpdateResponse, error) {
	f.requests = append(f.requests, req)
	return f.reply(req)
}

func (f *fakeTransport) MonthView(context.Context, uint, int, int) (*MonthView, error) {
	return nil, errors.New("not used")
}

// echo confirms whatever action was requested.
func echo(stats progress.Stats) func(UpdateRequest) (*UpdateResponse, error) {
	return func(req UpdateRequest) (*UpdateResponse, error) {
		return &UpdateResponse{Status: StatusSuccess, NewState: DayState(req.Action), Stats: &stats}, nil
	}
}

func testView() *MonthView {
	return &MonthView{
		HabitID: 7,
		Year:    2024,
		Month:   1,
		Days: []DayView{
			{Day: 1, State: StateDone, Interactive: true},
			{Day: 2, State: StateNone, Interactive: true},
			{Day: 3, State: StateNotDone, Interactive: true},
			{Day: 4, State: StateNone, Interactive: false},
		},
		Stats: progress.Stats{CurrentStreak: 1, BestStreak: 1, Score: 50},
	}
}

func TestClickSendsNextStateAndAppliesResponse(t *testing.T) {
	want := progress.Stats{CurrentStreak: 2, BestStreak: 2, Score: 67}
	ft := &fakeTransport{reply: echo(want)}
	c := NewController(testView(), ft, nil)

	state, err := c.Click(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, StateDone, state)
	assert.Equal(t, StateDone, c.State(2))
	assert.Equal(t, want, c.Stats())
	require.Len(t, ft.requests, 1)
	assert.Equal(t, UpdateRequest{Day: 2, Action: "done", Month: 1, Year: 2024}, ft.requests[0])
}

func TestThreeClicksCloseTheCycle(t *testing.T) {
	ft := &fakeTransport{reply: echo(progress.Stats{})}
	c := NewController(testView(), ft, nil)

	for i := 0; i < 3; i++ {
		_, err := c.Click(context.Background(), 2)
		require.NoError(t, err)
	}

	assert.Equal(t, StateNone, c.State(2))
	actions := []string{ft.requests[0].Action, ft.requests[1].Action, ft.requests[2].Action}
	assert.Equal(t, []string{"done", "not_done", "none"}, actions)
}

func TestStateComesFromServerNotFromGuess(t *testing.T) {
	ft := &fakeTransport{reply: func(UpdateRequest) (*UpdateResponse, error) {
		return &UpdateResponse{Status: StatusSuccess, NewState: StateNotDone, Stats: &progress.Stats{}}, nil
	}}
	c := NewController(testView(), ft, nil)

	state, err := c.Click(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, StateNotDone, state)
	assert.Equal(t, StateNotDone, c.State(2))
}

func TestLegacyNotDoneSpellingAccepted(t *testing.T) {
	ft := &fakeTransport{reply: func(UpdateRequest) (*UpdateResponse, error) {
		return &UpdateResponse{Status: StatusSuccess, NewState: "not-done"}, nil
	}}
	c := NewController(testView(), ft, nil)

	_, err := c.Click(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, StateNotDone, c.State(1))
}

func TestNonInteractiveDayIsNotSent(t *testing.T) {
	ft := &fakeTransport{reply: echo(progress.Stats{})}
	c := NewController(testView(), ft, nil)

	_, err := c.Click(context.Background(), 4)
	assert.ErrorIs(t, err, ErrNotInteractive)

	_, err = c.Click(context.Background(), 31)
	assert.ErrorIs(t, err, ErrNotInteractive)

	assert.Empty(t, ft.requests)
	assert.False(t, c.Interactive(4))
	assert.True(t, c.Interactive(1))
}

func TestFailuresLeaveStateUnchanged(t *testing.T) {
	cases := map[string]struct {
		reply  func(UpdateRequest) (*UpdateResponse, error)
		target interface{}
	}{
		"transport": {
			reply: func(UpdateRequest) (*UpdateResponse, error) {
				return nil, &TransportError{Err: errors.New("connection refused")}
			},
			target: new(*TransportError),
		},
		"http": {
			reply: func(UpdateRequest) (*UpdateResponse, error) {
				return nil, &StatusError{Code: 500}
			},
			target: new(*StatusError),
		},
		"application": {
			reply: func(UpdateRequest) (*UpdateResponse, error) {
				return &UpdateResponse{Status: StatusFailed, Message: "date is outside the habit's interactive window"}, nil
			},
			target: new(*ApplicationError),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var logs bytes.Buffer
			view := testView()
			c := NewController(view, &fakeTransport{reply: tc.reply}, log.New(&logs, "", 0))

			_, err := c.Click(context.Background(), 1)
			require.Error(t, err)
			assert.ErrorAs(t, err, tc.target)

			assert.Equal(t, StateDone, c.State(1))
			assert.Equal(t, view.Stats, c.Stats())
			assert.Contains(t, logs.String(), "kind="+name)
		})
	}
}

func TestUnknownStateInViewTreatedAsNone(t *testing.T) {
	view := testView()
	view.Days[0].State = "disabled"
	c := NewController(view, &fakeTransport{reply: echo(progress.Stats{})}, nil)

	assert.Equal(t, StateNone, c.State(1))
}
