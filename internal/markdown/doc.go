// Package markdown exposes Markdown documents as ordered lists of heading
// sections. A Document reads its backing store synchronously and writes it
// back asynchronously, reporting the outcome through a Completion.
package markdown
