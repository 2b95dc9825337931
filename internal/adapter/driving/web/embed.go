package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet and card images).
//
//go:embed static/*
var StaticFS embed.FS
