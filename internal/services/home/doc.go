// Package home keeps the home screen's view state in sync with its data
// producers.
//
// A ViewModel owns a HomeState with two independent axes (greeting and
// release records). Each axis starts Loading and moves exactly once to
// Success or Error when its producer resolves. Consumers read snapshots with
// State and observe transitions with Subscribe; they never write.
//
// # Launch modes
//
//   - LaunchSequential (default): one goroutine runs the greeting producer,
//     applies its outcome, then runs the records producer.
//   - LaunchParallel: each producer runs in its own goroutine and resolves
//     independently.
//
// Producer failures are terminal for their axis: no retry, no re-raise.
package home
