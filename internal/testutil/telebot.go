package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a tele.Context that records what a handler sends.
// Only the methods handlers use are implemented; anything else panics.
type FakeContext struct {
	tele.Context

	User     *tele.User
	Input    string
	Press    *tele.Callback
	EditErr  error
	Sent     []string
	Edited   []string
	Markups  []*tele.ReplyMarkup
	Answered []*tele.CallbackResponse
}

// NewFakeContext creates a context for a text message from userID
func NewFakeContext(userID int64, text string) *FakeContext {
	return &FakeContext{User: &tele.User{ID: userID}, Input: text}
}

// NewFakeCallback creates a context for an inline button press from userID
func NewFakeCallback(userID int64, data string) *FakeContext {
	return &FakeContext{
		User:  &tele.User{ID: userID},
		Press: &tele.Callback{ID: "cb", Data: data},
	}
}

func (c *FakeContext) Sender() *tele.User { return c.User }

func (c *FakeContext) Text() string { return c.Input }

func (c *FakeContext) Callback() *tele.Callback { return c.Press }

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, what.(string))
	c.recordMarkup(opts)
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Edited = append(c.Edited, what.(string))
	c.recordMarkup(opts)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.Answered = append(c.Answered, nil)
		return nil
	}
	c.Answered = append(c.Answered, resp[0])
	return nil
}

// LastSent returns the most recent sent message, or "" if nothing was sent
func (c *FakeContext) LastSent() string {
	if len(c.Sent) == 0 {
		return ""
	}
	return c.Sent[len(c.Sent)-1]
}

func (c *FakeContext) recordMarkup(opts []interface{}) {
	for _, o := range opts {
		if m, ok := o.(*tele.ReplyMarkup); ok {
			c.Markups = append(c.Markups, m)
		}
	}
}
