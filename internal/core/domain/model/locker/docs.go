// Package locker models port lockers held in the business store.
//
// State machine (initial EMPTY, no terminal state):
//
//	            start_maintenance
//	   EMPTY ─────────────────────> MAINTENANCE
//	   │ ▲ <─────────────────────────  │
//	   │ │       mark_empty
//	   │ │ release
//	   │ └──────────── OCCUPIED
//	   │ reserve          ▲
//	   └──> RESERVED ─────┘ occupy (box assignment)
//
// Invariants held by every constructed Locker:
//   - box reference set iff OCCUPIED
//   - reserved order reference set iff RESERVED
//   - maintenance reason non-blank iff MAINTENANCE
package locker
