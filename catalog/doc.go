// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the reference data sessions read from: trending items
per category, outfit templates per weather condition, the planning week and
the auto-fill policy.

Default returns the built-in data. A Repository seeds it into the database
on first start and loads it back on every start.
*/
package catalog
