package companion

import (
	"context"
	"sync"
	"time"

	"github.com/julianstephens/mindcare/internal/logger"
)

type deliveryState int

const (
	statePending deliveryState = iota
	stateDelivered
	stateCancelled
)

// PendingReply is a classifier reply whose delivery has been deferred.
// Exactly one of delivery or cancellation happens, at most once.
type PendingReply struct {
	reply       Reply
	onDelivered func(Reply)
	onCancelled func()

	mu        sync.Mutex
	state     deliveryState
	timer     Timer
	stopCtx   func() bool
	done      chan struct{}
	cancelled chan struct{}
}

// ClassifyWithDelay classifies text immediately and delivers the reply to
// onDelivered after delay. The reply is cancelled, and onCancelled called
// instead, if Cancel is called or ctx ends first. Both callbacks are optional.
func (c *Classifier) ClassifyWithDelay(ctx context.Context, clock Clock, text string, delay time.Duration, onDelivered func(Reply), onCancelled func()) (*PendingReply, error) {
	reply, err := c.Classify(text)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock
	}
	if delay < 0 {
		delay = 0
	}

	p := &PendingReply{
		reply:       reply,
		onDelivered: onDelivered,
		onCancelled: onCancelled,
		stopCtx:     func() bool { return false },
		done:        make(chan struct{}),
		cancelled:   make(chan struct{}),
	}

	p.mu.Lock()
	p.timer = clock.AfterFunc(delay, p.deliver)
	p.mu.Unlock()

	if ctx != nil {
		stop := context.AfterFunc(ctx, func() { p.Cancel() })
		p.mu.Lock()
		if p.state == statePending {
			p.stopCtx = stop
		} else {
			stop()
		}
		p.mu.Unlock()
	}

	return p, nil
}

// Reply returns the computed reply regardless of delivery state
func (p *PendingReply) Reply() Reply {
	return p.reply
}

// Done is closed after the reply has been delivered
func (p *PendingReply) Done() <-chan struct{} {
	return p.done
}

// Cancelled is closed after the reply has been cancelled
func (p *PendingReply) Cancelled() <-chan struct{} {
	return p.cancelled
}

// Cancel abandons the reply. It returns false if the reply was already
// delivered or cancelled.
func (p *PendingReply) Cancel() bool {
	p.mu.Lock()
	if p.state != statePending {
		p.mu.Unlock()
		return false
	}
	p.state = stateCancelled
	timer, stop := p.timer, p.stopCtx
	p.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	stop()
	logger.Debug("Reply cancelled before delivery", "category", p.reply.Category)

	if p.onCancelled != nil {
		p.onCancelled()
	}
	close(p.cancelled)
	return true
}

func (p *PendingReply) deliver() {
	p.mu.Lock()
	if p.state != statePending {
		p.mu.Unlock()
		return
	}
	p.state = stateDelivered
	stop := p.stopCtx
	p.mu.Unlock()

	stop()
	if p.onDelivered != nil {
		p.onDelivered(p.reply)
	}
	close(p.done)
}
