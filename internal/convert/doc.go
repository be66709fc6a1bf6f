// Package convert drives a conversion run over a project tree: it walks the
// directory, rewrites matching files in place through the rewrite pipeline,
// extracts pre-converted .hip files, reports progress, and formats the final
// summary.
//
// File processing is deliberately not transactional: a file is read, rewritten
// in memory, then truncated and overwritten, with no backup. A failure on one
// file aborts that file only; changes already committed to other files stay.
package convert
