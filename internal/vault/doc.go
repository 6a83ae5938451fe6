// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

// Package vault implements the encrypted secrets container at the heart of
// NeoVault: a named collection of [models.Entry] values plus vault-level
// metadata, sealed into a single authenticated vault file under a
// password-derived key.
//
// The package owns entry bookkeeping (add, remove, get, list, search, clear)
// and the seal/open pipeline (serialize → derive key → encrypt → persist and
// its reverse). Key derivation, authenticated encryption, and file I/O are
// injected as collaborator interfaces from internal/crypto and
// internal/store.
package vault
