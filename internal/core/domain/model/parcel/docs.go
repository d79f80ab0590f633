// Package parcel implements the parcel lifecycle: the Parcel aggregate, its
// status state machine and the append-only tracking history.
//
// Status transitions:
//
//	Requested ──> Approved ──> Dispatched ──> In Transit ──> Delivered
//	    │             │
//	    └─────────────┴──> Canceled            (sender, before dispatch)
//
//	any status ──> Blocked                     (administrator)
//
// Administrators move a parcel between Approved, Dispatched and In Transit;
// only the receiver can deliver it and only the sender can cancel it.
// Delivered, Canceled and Blocked are terminal for every status-changing
// operation except blocking.
//
// Every status change appends exactly one TrackingEvent, so the last event
// always carries the current status and the history never shrinks.
package parcel
