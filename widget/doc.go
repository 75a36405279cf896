// Package widget defines the retained widget interface, the mouse input
// events and the App dispatcher that routes them.
//
// Dispatch follows the widget tree top-down: the event is offered to the
// outermost widget under the pointer first, and descends into the topmost
// child containing the pointer until some handler reports it consumed. A
// widget may Lock the host so that subsequent events bypass hit-testing and
// go straight to it (drag gestures).
package widget
