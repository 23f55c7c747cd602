package main

import (
	"crypto/rand"
	"fmt"
	"log"

	"github.com/not-for-prod/hdkeys/bip32"
	"github.com/not-for-prod/hdkeys/ethereum"
	"github.com/not-for-prod/hdkeys/monero"
)

func main() {
	seed := make([]byte, 64)
	if _, err := rand.Read(seed); err != nil {
		log.Fatal(err)
	}

	master, err := bip32.NewMasterKey(seed, bip32.Mainnet, bip32.P2PKH)
	if err != nil {
		log.Fatal(err)
	}

	path, err := bip32.ParsePath("m/44'/0'/0'/0/0")
	if err != nil {
		log.Fatal(err)
	}

	account, err := master.Derive(path)
	if err != nil {
		log.Fatal(err)
	}

	xprv, err := account.Serialize()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Bitcoin account xprv: %s\n", xprv)

	xpub, err := account.ToExtendedPublicKey().Serialize()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Bitcoin account xpub: %s\n", xpub)

	ethKey, err := ethereum.New(rand.Reader)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Ethereum private key: 0x%s\n", ethKey.Hex())
	fmt.Printf("Ethereum public key:  0x%s\n", ethKey.PublicKeyHex())

	moneroMnemonic, err := monero.New(rand.Reader, monero.English{})
	if err != nil {
		log.Fatal(err)
	}
	phrase, err := moneroMnemonic.ToPhrase()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Monero mnemonic: %s\n", phrase)
}
