// Package gridledger implements the ledger and transaction engine of a
// peer-to-peer energy-trading community. Registered devices (solar panels,
// batteries, EV chargers, homes, grid connectors) hold balances in the KRNL
// unit of account and exchange value through typed transactions: direct
// payments, energy sales, revenue distributions, and subsidies.
//
// The core functionalities include:
//   - Device Registry: an insertion-ordered set of devices with unique
//     addresses, balances that can never go negative, and per-type energy
//     production/consumption meters.
//   - Transfer Engine: the atomic primitive that moves value between two
//     devices and appends an immutable record to the transaction log.
//   - Distribution Engine: multi-recipient revenue splits (equal or
//     weighted), realized as a best-effort sequence of transfers.
//   - Rate Table: the live energy-to-currency conversion rates (standard
//     and peak) used to price energy sales; settled transactions are never
//     repriced.
//   - Query Service: filtered, newest-first views over the transaction log
//     and aggregate summaries over the registry.
//
// All amounts are exact decimals, never floats. The whole engine is
// in-memory: a LedgerService owns its state and is safe for concurrent use.
// This package serves as the foundational logic for the `kwl` command-line
// tool and the HTTP API in the api subpackage.
package gridledger
