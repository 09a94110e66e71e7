package spseq

import "errors"

var (
	// ErrUnmatchedCapacity is returned when a message vector's length does
	// not match a key's signature capacity, or when a decoded public key's
	// header disagrees with the number of points that follow it.
	ErrUnmatchedCapacity = errors.New("spseq: message length does not match signature capacity")

	// ErrInvalidSignature is returned when either of the two pairing checks
	// in Verify fails.
	ErrInvalidSignature = errors.New("spseq: invalid signature")

	// ErrInvalidSecretKeyVector is returned by ImportSigningKey when the
	// supplied scalar vector is empty or contains a zero element.
	ErrInvalidSecretKeyVector = errors.New("spseq: invalid secret key vector")

	// ErrInvalidEncoding is returned when a public key cannot be parsed from
	// bytes: the 8-byte header is truncated, the capacity it carries is not
	// positive, or a point fails to decode. Point data whose length does not
	// match the header yields ErrUnmatchedCapacity instead.
	ErrInvalidEncoding = errors.New("spseq: invalid encoding")

	// ErrIO is returned when an underlying writer fails during encoding.
	ErrIO = errors.New("spseq: io error")
)
