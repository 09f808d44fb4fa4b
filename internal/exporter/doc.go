// Package exporter renders chart results as downloadable tables.
//
// Every chart is first flattened into one or more Tables: the histogram
// into one row per time bin, the heatmap into one row per (day, employee)
// cell and the social graph into a nodes table and a links table. Tables
// are then encoded as CSV (encoding/csv, optional UTF-8 BOM for Excel) or
// as an XLSX workbook with one sheet per table (excelize).
//
// Example usage:
//
//	tables := exporter.GraphTables(graph)
//	err := exporter.Write(w, exporter.FormatXLSX, tables...)
package exporter
