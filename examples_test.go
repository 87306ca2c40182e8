package reedsolomon_test

import (
	"fmt"
	"log"

	"github.com/fecgo/reedsolomon"
)

// Simple example of encoding a message and verifying the result.
func ExampleNew() {
	rs, err := reedsolomon.New(4)
	if err != nil {
		log.Fatal(err)
	}

	codeword, err := rs.Encode([]byte{0x12, 0x34, 0x56})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(codeword)

	ok, _ := rs.Verify(codeword)
	fmt.Println(ok)
	// Output: [18 52 86 55 230 120 217]
	// true
}

// Repairing a codeword that picked up two unknown symbol errors.
// Note that all error checks have been removed to keep it short.
func ExampleCodec_Decode() {
	rs, _ := reedsolomon.New(10)
	codeword, _ := rs.Encode([]byte("hello world"))

	// Corrupt two symbols somewhere along the way.
	codeword[0] ^= 0xff
	codeword[4] ^= 0x10

	msg, _, err := rs.Decode(codeword, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(msg))
	// Output: hello world
}

// Combining known erasures with unknown errors. Twelve parity symbols
// can absorb 2*errors+erasures up to twelve.
func ExampleCodec_Decode_erasures() {
	rs, _ := reedsolomon.New(12)
	codeword, _ := rs.Encode([]byte{66, 195, 213, 196, 122, 195, 82, 208})

	codeword[0] = 12 // unknown errors
	codeword[1] = 101
	codeword[3] = 8
	codeword[6] = 15
	codeword[7] = 0 // known-bad position, content ignored

	msg, _, err := rs.Decode(codeword, []int{7})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(msg)
	// Output: [66 195 213 196 122 195 82 208]
}
