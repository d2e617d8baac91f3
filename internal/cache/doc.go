// Package cache keeps decoded documents in memory between renders.
//
// Decoding a layered document dominates the cost of a render, while the
// document itself rarely changes. Documents are keyed by path, size and
// modification time so that an edited file is decoded again.
//
//	docs := cache.New(4)
//	key, err := cache.KeyFor(path)
//	doc, err := docs.Load(key, func() (*document.Document, error) {
//	    return document.Load(path, document.PSD{})
//	})
//
// # Thread Safety
//
// Documents is safe for concurrent use and must not be copied after creation.
// Cached documents are shared and must be treated as read-only.
package cache
