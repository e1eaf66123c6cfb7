package keepsake

import (
	"fmt"

	"github.com/arthur-debert/keepsake/pkg/datastore"
	"github.com/arthur-debert/keepsake/pkg/types"
	"github.com/spf13/cobra"
)

// Counter is the value behind the counter command.
type Counter struct {
	Count uint32 `toml:"count" yaml:"count"`
}

func (Counter) Category() types.Category { return types.Data }

type counterOptions struct {
	id          string
	by          uint32
	uncommitted bool
	dryRun      bool
}

func newCounterCmd(app *appState) *cobra.Command {
	opts := counterOptions{}

	cmd := &cobra.Command{
		Use:       "counter [get|incr|reset]",
		Short:     MsgCounterShort,
		Long:      MsgCounterLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"get", "incr", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			op := "get"
			if len(args) == 1 {
				op = args[0]
			}
			value, err := runCounter(app.storage, op, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgCounterValue, opts.id, value.Count)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "counter", MsgFlagID)
	cmd.Flags().Uint32Var(&opts.by, "by", 1, MsgFlagBy)
	cmd.Flags().BoolVar(&opts.uncommitted, "uncommitted", false, MsgFlagUncommitted)
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}

// counterStore adds the counter operations to a managed Counter.
type counterStore struct {
	*datastore.Manager[Counter]
}

func openCounter(storage datastore.Storage, id string) (counterStore, error) {
	m, err := datastore.NewManager[Counter](storage, id)
	if err != nil {
		return counterStore{}, fmt.Errorf(MsgErrCounterOpen, err)
	}
	return counterStore{m}, nil
}

// apply runs change the given number of times, saving after each one unless
// the options ask for a single save at the end or for none.
func (s counterStore) apply(change func(*Counter), times uint32, opts counterOptions) error {
	for i := uint32(0); i < times; i++ {
		if opts.dryRun || opts.uncommitted {
			s.ModifyUncommitted(change)
			continue
		}
		if err := s.Modify(change); err != nil {
			return fmt.Errorf(MsgErrCounterSave, err)
		}
	}

	if opts.uncommitted && !opts.dryRun {
		if err := s.Save(); err != nil {
			return fmt.Errorf(MsgErrCounterSave, err)
		}
	}
	return nil
}

func (s counterStore) increment(opts counterOptions) error {
	return s.apply(func(c *Counter) { c.Count++ }, opts.by, opts)
}

func (s counterStore) reset(opts counterOptions) error {
	return s.apply(func(c *Counter) { c.Count = 0 }, 1, opts)
}

var counterOps = map[string]func(counterStore, counterOptions) error{
	"get":   func(counterStore, counterOptions) error { return nil },
	"incr":  counterStore.increment,
	"reset": counterStore.reset,
}

// runCounter rejects an unknown operation before touching any file.
func runCounter(storage datastore.Storage, op string, opts counterOptions) (Counter, error) {
	run, ok := counterOps[op]
	if !ok {
		return Counter{}, fmt.Errorf(MsgErrUnknownOp, op)
	}

	store, err := openCounter(storage, opts.id)
	if err != nil {
		return Counter{}, err
	}
	err = run(store, opts)
	return store.Get(), err
}
