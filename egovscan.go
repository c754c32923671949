// Package egovscan extracts e-government service listings from municipal
// websites. It fetches a batch of pages concurrently, locates the services
// block on each page, and harvests the service links it contains, reporting
// a per-URL result that is either a link list or a classified fetch error.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/).
package egovscan
