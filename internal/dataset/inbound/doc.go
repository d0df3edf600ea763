// Package inbound exposes the dataset usecase over HTTP.
package inbound
