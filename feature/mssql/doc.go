// Package mssql is the Microsoft SQL Server engine adapter.
//
// It contributes the gorm SQL Server dialect with the forum naming strategy, the engine
// metadata and its data-access registration. SQL Server ships no specific-function runner.
package mssql
