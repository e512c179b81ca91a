// Package portsmock provides testify doubles for the repositories in ports.
//
// Every method records its call through mock.Mock, so tests can pin the order
// of reads and writes with mock.InOrder.
package portsmock
