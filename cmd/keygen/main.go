package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/systemifyautomation/html-to-pdf/internal/pdf/domain"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/store"
	"github.com/systemifyautomation/html-to-pdf/internal/pdf/store/drivers/jsonfile"
	"github.com/systemifyautomation/html-to-pdf/pkg/cryptox"
)

// keygen manages the API key file offline, without a running service.
// The service only ever reads the file it is pointed at, so this tool is
// the way to bootstrap a deployment or recover from a lost super-user key.

const usage = `Usage: keygen <command> [flags]

Commands:
  init        Create a new key file with a fresh super-user key
  add         Add an API key to an existing key file
  list        Print all keys, secrets masked
  deactivate  Deactivate a key by secret prefix

Common flags:
  -file string   Path to the key file (default "api_keys.json")
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "init":
		err = runInit(os.Args[2:])
	case "add":
		err = runAdd(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	case "deactivate":
		err = runDeactivate(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "keygen: %v\n", err)
		os.Exit(1)
	}
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	file := fs.String("file", "api_keys.json", "path to the key file")
	name := fs.String("name", "Super User", "super-user display name")
	perMinute := fs.Int("per-minute", 10, "requests per minute per key")
	perHour := fs.Int("per-hour", 100, "requests per hour per key")
	_ = fs.Parse(args)

	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return fmt.Errorf("generate super-user key: %w", err)
	}

	super := domain.SuperUser{
		Key:     secret,
		Name:    *name,
		Created: domain.Today(),
	}
	rl := domain.RateLimitConfig{
		RequestsPerMinute: *perMinute,
		RequestsPerHour:   *perHour,
	}

	if err := jsonfile.Init(*file, super, rl); err != nil {
		return err
	}

	fmt.Printf("Key file created: %s\n", *file)
	fmt.Printf("Super-user key:   %s\n", secret)
	fmt.Println("Store this key securely. It will not be shown again.")
	return nil
}

func runAdd(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	file := fs.String("file", "api_keys.json", "path to the key file")
	name := fs.String("name", "", "key holder name (required)")
	inactive := fs.Bool("inactive", false, "create the key deactivated")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("-name is required")
	}

	st, err := openStore(*file)
	if err != nil {
		return err
	}

	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	err = st.Mutate(func(f *domain.KeyFile) error {
		f.APIKeys = append(f.APIKeys, domain.APIKey{
			Key:     secret,
			Name:    *name,
			Created: domain.Today(),
			Active:  !*inactive,
		})
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("API key for %q: %s\n", *name, secret)
	fmt.Println("Store this key securely. It will not be shown again.")
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	file := fs.String("file", "api_keys.json", "path to the key file")
	_ = fs.Parse(args)

	st, err := openStore(*file)
	if err != nil {
		return err
	}

	snap := st.Snapshot()
	fmt.Printf("%-18s %-24s %-12s %s\n", "KEY", "NAME", "CREATED", "ACTIVE")
	for _, k := range snap.APIKeys {
		fmt.Printf("%-18s %-24s %-12s %t\n", domain.MaskSecret(k.Key), k.Name, k.Created, k.Active)
	}
	fmt.Printf("\n%d key(s), rate limit %d/min %d/hour\n",
		len(snap.APIKeys), snap.RateLimit.RequestsPerMinute, snap.RateLimit.RequestsPerHour)
	return nil
}

func runDeactivate(args []string) error {
	fs := flag.NewFlagSet("deactivate", flag.ExitOnError)
	file := fs.String("file", "api_keys.json", "path to the key file")
	prefix := fs.String("prefix", "", "secret prefix of the key (required)")
	_ = fs.Parse(args)

	if *prefix == "" {
		return fmt.Errorf("-prefix is required")
	}

	st, err := openStore(*file)
	if err != nil {
		return err
	}

	var name string
	err = st.Mutate(func(f *domain.KeyFile) error {
		i, err := store.ResolvePrefix(f, *prefix)
		if err != nil {
			return err
		}
		f.APIKeys[i].Active = false
		name = f.APIKeys[i].Name
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Deactivated key for %q\n", name)
	return nil
}

func openStore(path string) (*jsonfile.Store, error) {
	st := jsonfile.New(path)
	if err := st.Load(); err != nil {
		return nil, fmt.Errorf("load key file %s: %w", path, err)
	}
	return st, nil
}
