// Package frame runs the single threaded render loop: it redraws the
// scene into a pixel buffer when something changed, presents the buffer
// on a [Surface] and dispatches the surface's events.
//
// The loop keeps three flags. dirty means the scene must be rendered
// again, resized means the buffer must first be resized to the last
// reported size, and done ends [Loop.Run]. Input arrives through
// [EventSource] values which are polled once per step; any goroutines
// behind them only feed channels.
package frame
