// Command spseqkeygen generates an SPS-EQ key pair for a given message
// capacity and prints the public key. The secret key is never written
// anywhere; this version of the library does not support secret-key
// serialization, so the only way to use the generated key is within the
// process that created it.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/brave-experiments/go-sps-eq/spseq"
)

func main() {
	capacity := flag.Int("capacity", 3, "signature capacity (length of the message vector)")
	outputFile := flag.String("output", "", "output file for the public key (defaults to stdout)")
	flag.Parse()

	if *capacity < 1 {
		fmt.Fprintln(os.Stderr, "error: -capacity must be at least 1")
		os.Exit(1)
	}

	sk, err := spseq.GenerateSigningKey(*capacity, rand.Reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating signing key: %v\n", err)
		os.Exit(1)
	}
	defer sk.Destroy()

	pk := spseq.DerivePublicKey(sk)

	encoded, err := pk.Encode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error encoding public key: %v\n", err)
		os.Exit(1)
	}

	out := struct {
		Capacity  int    `json:"capacity"`
		PublicKey string `json:"publicKey"`
	}{
		Capacity:  pk.Capacity(),
		PublicKey: base64.StdEncoding.EncodeToString(encoded),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error serializing output: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, data, 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "error writing %s: %v\n", *outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("public key written to %s\n", *outputFile)
		return
	}

	fmt.Println(string(data))
}
