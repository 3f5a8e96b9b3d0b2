// Package carrier models the transport tiers a quotation can be assigned to.
//
// A Carrier is produced by a Factory, one per tier, and applies its price
// multiplier to the value built by the service chain. New tiers are added by
// providing another Factory; nothing in the existing tiers changes.
//
// Built-in tiers:
//
//	Economy  - TransLog Econômica, 10 days, ×1.0
//	Standard - ExpressLog Padrão,   5 days, ×1.3
//	Express  - RapidLog Express,    2 days, ×1.8
package carrier
