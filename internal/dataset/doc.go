// Package dataset serves the CSV files of one data directory: listing,
// parsing with encoding fallback and type inference, upload and delete.
package dataset
