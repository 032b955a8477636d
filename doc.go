/*
Package decnum provides BigInt, an arbitrary-precision signed integer stored
as a slice of base-10 digits.

BigInt is a value type; all operations return new values and never modify
their receiver or arguments. The zero value is ready to use and is 0.

Simple example:

	a := MustBigIntFromString("999999999999")
	fmt.Println(a.Mul(a))
	// Output: 999999999998000000000001

BigInts can be created from a variety of sources:

	BigIntFromString(s string) (out BigInt, err error)
	MustBigIntFromString(s string) BigInt
	BigIntFrom64(v int64) BigInt
	BigIntFrom32(v int32) BigInt
	BigIntFrom16(v int16) BigInt
	BigIntFrom8(v int8) BigInt
	BigIntFromInt(v int) BigInt
	BigIntFromU64(v uint64) BigInt
	BigIntFromBigInt(v *big.Int) BigInt

Only decimal strings are accepted: an optional leading '-' and at least one
digit. Leading zeros are discarded and "-0" reads as 0; there is no negative
zero. Anything else fails with an error wrapping ErrInvalidFormat.

The supported arithmetic is Neg, Abs, Add, Sub, Inc, Dec and Mul. Division
is not implemented.

BigInt supports the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package decnum
