// Package services contains stateless domain services that implement
// business decisions spanning multiple aggregates. The content gate decides
// which analysis content a requester may observe based on role and order
// status.
package services
