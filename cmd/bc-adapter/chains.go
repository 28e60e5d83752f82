package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/byunyourim/BC-Adapter/internal/chain"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

// chainsFile is the layout of --chains-file:
//
//	chains:
//	  sepolia:
//	    rpc: https://sepolia.example.org
//	    bundler: https://bundler.example.org/sepolia
type chainsFile struct {
	Chains map[string]chainURLs `yaml:"chains"`
}

type chainURLs struct {
	RPC     string `yaml:"rpc"`
	Bundler string `yaml:"bundler"`
}

// loadEndpoints reads path (optional) and applies <CHAIN>_RPC_URL and
// <CHAIN>_BUNDLER_URL overrides from lookup.
func loadEndpoints(path string, lookup func(string) (string, bool)) (chain.Endpoints, error) {
	endpoints := chain.Endpoints{
		Ledger:  make(map[model.Chain]string),
		Bundler: make(map[model.Chain]string),
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return chain.Endpoints{}, fmt.Errorf("read chains file: %w", err)
		}
		var file chainsFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return chain.Endpoints{}, fmt.Errorf("parse chains file: %w", err)
		}
		for name, urls := range file.Chains {
			c, err := chain.Parse(name)
			if err != nil {
				return chain.Endpoints{}, fmt.Errorf("chains file: %w", err)
			}
			setURL(endpoints.Ledger, c, urls.RPC)
			setURL(endpoints.Bundler, c, urls.Bundler)
		}
	}

	for _, c := range chain.Supported() {
		prefix := strings.ToUpper(string(c))
		if v, ok := lookup(prefix + "_RPC_URL"); ok {
			setURL(endpoints.Ledger, c, v)
		}
		if v, ok := lookup(prefix + "_BUNDLER_URL"); ok {
			setURL(endpoints.Bundler, c, v)
		}
	}
	return endpoints, nil
}

func setURL(urls map[model.Chain]string, c model.Chain, url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		delete(urls, c)
		return
	}
	urls[c] = url
}
