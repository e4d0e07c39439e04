// Package smallint defines the contract shared by the small integer codecs in
// this module.
//
// Every codec turns a sequence of unsigned 64-bit integers into a
// self-delimiting byte sequence and back. Values are written in input order
// with nothing between them, so a decoder must be told how many values to
// read. Decoding is a prefix consumer: bits after the last requested value are
// ignored.
//
// Codecs
//
//  | Package | Name   | Granularity | Notes                                         |
//  |---------|--------|-------------|-----------------------------------------------|
//  | form    | 2bit   | bit         | prefix-free form table, seven ranges plus raw |
//  | nibble  | 4bit   | 4 bits      | 3 value bits and a continuation flag          |
//  | varint  | 8bit   | byte        | 7 value bits, biased continuation chunks      |
//  | varint  | 8proto | byte        | 7 value bits, protobuf varint                 |
//  | ordered | 8wt    | byte        | byte order matches numeric order, signed too  |
//  | elias   | gamma  | bit         | unary length, LSB-first tail                  |
//  | elias   | delta  | bit         | gamma coded length, LSB-first tail            |
//  | elias   | delta1 | bit         | delta with a direct 1 bit small value escape  |
//  | elias   | omega  | bit         | recursive length segments                     |
//
// Signed values are mapped onto the unsigned domain by package integer before
// they reach a codec (except for ordered, which has its own signed layout).
//
// Errors
//
// Failures are reported with the error classes in this package. Check them
// with Has:
//
//  if smallint.TruncatedError.Has(err) {
//  	...
//  }
//
// A failed Encode or Decode never returns a partial result.
package smallint
