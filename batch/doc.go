// Package batch provides concurrent image discovery for sets of articles.
//
// The Runner type fans article discovery requests out over a worker pool and
// collects per-article results, including:
//   - Running the full escalating search for each article
//   - Reporting progress as articles complete
//   - Collecting per-article failures without aborting the batch
//
// Processing is performed concurrently using a worker pool to maximize
// throughput. A failed article produces a Result carrying its error; it never
// fails the batch as a whole.
package batch
