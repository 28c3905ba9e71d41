// Package order provides the Order aggregate and its Status state machine,
// the core of the document-analysis lifecycle engine.
//
// Key business rules:
//   - Orders are created by clients in the NEW status and never deleted
//   - Any operator may move an order to any of the five statuses; the
//     workflow is advisory, not strictly enforced
//   - The assigned operator is recorded write-once on the first transition
//     into IN_PROGRESS
//   - Saving an analysis forces AWAITING_PAYMENT; a successful payment
//     forces COMPLETED. These are the only two transitions not issued
//     explicitly by an operator
package order
