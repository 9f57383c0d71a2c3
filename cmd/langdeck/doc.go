// Package main hosts the langdeck CLI entrypoint and command graph.
//
// Invoked without arguments, langdeck converts the configured tab-delimited
// flashcard export into the numbered record file and prints a one-line count
// of the records written. The config subcommands scaffold and check the TOML
// configuration. Logging goes to stderr; stdout carries only results.
//
// Keep this package lean: conversion behaviour lives in internal/pipeline and
// the packages it drives.
package main
