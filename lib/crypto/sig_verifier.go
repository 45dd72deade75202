// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"sync"
)

// Logger is the logger the signature verifier reports failures to.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// SignatureInfo holds a signature along with the public key, the message
// and the function to verify it with.
type SignatureInfo struct {
	PubKey     []byte
	Sign       []byte
	Msg        []byte
	VerifyFunc VerifyFunc
}

// SignatureVerifier verifies a batch of signatures in the background.
type SignatureVerifier struct {
	batch   []*SignatureInfo
	init    bool // Indicates whether the batch processing is started.
	invalid bool // Set to true if any signature verification fails.
	logger  Logger
	wake    chan struct{}
	closeCh chan struct{}
	sync.RWMutex
	sync.WaitGroup
}

// NewSignatureVerifier initialises SignatureVerifier which does background verification of signatures.
// Start() is called to start the verification process.
// Finish() is called to stop the verification process.
// Signatures can be added to the batch using Add().
func NewSignatureVerifier(logger Logger) *SignatureVerifier {
	return &SignatureVerifier{
		batch:   make([]*SignatureInfo, 0),
		logger:  logger,
		wake:    make(chan struct{}, 1),
		closeCh: make(chan struct{}),
	}
}

// Start signature verification in batch.
// It has no effect if the verification is already started.
func (sv *SignatureVerifier) Start() {
	sv.Lock()
	if sv.init {
		sv.Unlock()
		return
	}
	sv.init = true
	closeCh := sv.closeCh
	sv.Unlock()

	sv.WaitGroup.Add(1)
	go sv.run(closeCh)
}

func (sv *SignatureVerifier) run(closeCh <-chan struct{}) {
	defer sv.Done()
	for {
		sig := sv.Remove()
		if sig == nil {
			select {
			case <-closeCh:
				return
			case <-sv.wake:
				continue
			}
		}

		err := sig.VerifyFunc(sig.PubKey, sig.Sign, sig.Msg)
		if err != nil {
			sv.logger.Errorf("batch signature verification failed: %s", err)
			sv.Invalid()
			return
		}
	}
}

// IsStarted returns true if the batch verification is started.
func (sv *SignatureVerifier) IsStarted() bool {
	sv.RLock()
	defer sv.RUnlock()
	return sv.init
}

// IsInvalid returns true if a signature of the batch failed to verify.
func (sv *SignatureVerifier) IsInvalid() bool {
	sv.RLock()
	defer sv.RUnlock()
	return sv.invalid
}

// Invalid marks the batch as invalid and drops the signatures left to verify.
func (sv *SignatureVerifier) Invalid() {
	sv.Lock()
	defer sv.Unlock()
	sv.invalid = true
	sv.batch = sv.batch[:0]
}

// Add adds a signature to the batch. It is ignored if the batch is already invalid.
func (sv *SignatureVerifier) Add(s *SignatureInfo) {
	sv.Lock()
	defer sv.Unlock()
	if sv.invalid {
		return
	}

	sv.batch = append(sv.batch, s)

	select {
	case sv.wake <- struct{}{}:
	default:
	}
}

// Remove returns the first signature from the batch. Returns nil if batch is empty.
func (sv *SignatureVerifier) Remove() *SignatureInfo {
	sv.Lock()
	defer sv.Unlock()
	if len(sv.batch) == 0 {
		return nil
	}
	sign := sv.batch[0]
	sv.batch = sv.batch[1:]
	return sign
}

// Reset stops the verification if it is started and clears the verifier for reuse.
// The signatures left in the batch are dropped.
func (sv *SignatureVerifier) Reset() {
	sv.Lock()
	sv.batch = sv.batch[:0]
	sv.Unlock()

	sv.stop()
	sv.clear()
}

// stop closes the channel the verification goroutine selects on and waits
// for it to return. The goroutine drains the batch before returning.
func (sv *SignatureVerifier) stop() {
	sv.Lock()
	if !sv.init {
		sv.Unlock()
		return
	}
	sv.init = false
	close(sv.closeCh)
	sv.closeCh = make(chan struct{})
	sv.Unlock()

	sv.Wait()
}

func (sv *SignatureVerifier) clear() {
	sv.Lock()
	defer sv.Unlock()
	sv.batch = make([]*SignatureInfo, 0)
	sv.invalid = false

	select {
	case <-sv.wake:
	default:
	}
}

// Finish waits till the batch is verified and resets the verifier.
// It starts the verification if it was not started.
// Returns true if all the signatures are valid, otherwise returns false.
func (sv *SignatureVerifier) Finish() bool {
	sv.Start()
	sv.stop()
	isInvalid := sv.IsInvalid()
	sv.clear()
	return !isInvalid
}
