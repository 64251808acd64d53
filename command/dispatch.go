package command

import (
	"strconv"
	"strings"

	"valuecore/logger"
	"valuecore/object"
	"valuecore/object/memaccount"
	"valuecore/object/pools"
)

// Dispatch routes a single OBJECT or MEMORY command against store,
// matching the subcommand grammars of spec.md §4.7. cmd is matched
// case-insensitively; subcommand names are too.
func Dispatch(store *object.Store, cmd string, args []string) Reply {
	switch strings.ToUpper(cmd) {
	case "OBJECT":
		return dispatchObject(store, args)
	case "MEMORY":
		return dispatchMemory(store, args)
	default:
		return errReply(object.ErrUnknownSubcommand)
	}
}

var objectSubcommands = []string{"HELP", "REFCOUNT", "ENCODING", "IDLETIME", "FREQ"}

func dispatchObject(store *object.Store, args []string) Reply {
	if len(args) == 0 {
		return errReply(object.ErrWrongArity)
	}
	sub := strings.ToUpper(args[0])

	if sub == "HELP" {
		return helpReply(objectSubcommands)
	}

	switch sub {
	case "REFCOUNT", "ENCODING", "IDLETIME", "FREQ":
	default:
		return errReply(object.ErrUnknownSubcommand)
	}

	if len(args) != 2 {
		return errReply(object.ErrWrongArity)
	}
	key := args[1]
	v := store.Get(key)
	if v == nil {
		return nilReply()
	}

	switch sub {
	case "REFCOUNT":
		return intReply(int64(v.Refcount()))
	case "ENCODING":
		return bulkReply(v.Encoding().WireName())
	case "IDLETIME":
		idle, err := object.IdleTime(v)
		if err != nil {
			return errReply(err)
		}
		return intReply(idle)
	case "FREQ":
		freq, err := object.Freq(v)
		if err != nil {
			return errReply(err)
		}
		return intReply(int64(freq))
	default:
		return errReply(object.ErrUnknownSubcommand)
	}
}

var memorySubcommands = []string{"USAGE", "STATS", "DOCTOR", "PURGE", "MALLOC-STATS", "HELP"}

func dispatchMemory(store *object.Store, args []string) Reply {
	if len(args) == 0 {
		return errReply(object.ErrWrongArity)
	}
	sub := strings.ToUpper(args[0])

	switch sub {
	case "HELP":
		return helpReply(memorySubcommands)

	case "USAGE":
		return memoryUsage(store, args[1:])

	case "STATS":
		return memoryStats(store)

	case "DOCTOR":
		return memoryDoctor(store)

	case "PURGE":
		logger.Debug("command: MEMORY PURGE requested (no-op: allocator has no dirty-page release hook)")
		return bulkReply("OK")

	case "MALLOC-STATS":
		return bulkReply("not supported")

	default:
		return errReply(object.ErrUnknownSubcommand)
	}
}

func memoryUsage(store *object.Store, rest []string) Reply {
	if len(rest) == 0 {
		return errReply(object.ErrWrongArity)
	}
	key := rest[0]
	samples := memaccount.DefaultSamples()

	if len(rest) > 1 {
		if len(rest) != 3 || strings.ToUpper(rest[1]) != "SAMPLES" {
			return errReply(object.ErrSyntax)
		}
		n, err := strconv.Atoi(rest[2])
		if err != nil {
			return errReply(object.ErrSyntax)
		}
		samples = n
	}

	v := store.Get(key)
	if v == nil {
		return nilReply()
	}

	const keyBookkeepingOverhead = 48 // one hashtable entry holding this key
	size := memaccount.SizeOf(v, samples) + len(key) + keyBookkeepingOverhead
	return intReply(int64(size))
}

// memoryStats serializes the full overheadReport() structure as the
// flat (name, value) pair list spec.md §4.7 specifies, including its
// per-database entries. This standalone binary has no replication link
// or client-buffer tracking, so HostMemoryInputs goes in zero-valued.
func memoryStats(store *object.Store) Reply {
	report := memaccount.ComputeOverheadReport(store, memaccount.DefaultSamples(), sharedMonitor, memaccount.HostMemoryInputs{})
	pairs := report.Pairs()
	items := make([]Reply, len(pairs))
	for i, p := range pairs {
		items[i] = bulkReply(p)
	}
	return arrayReply(items)
}

func memoryDoctor(store *object.Store) Reply {
	report := memaccount.ComputeOverheadReport(store, memaccount.DefaultSamples(), sharedMonitor, memaccount.HostMemoryInputs{})
	findings := memaccount.MemoryDoctor(report)

	b := pools.GetStringBuilder()
	defer pools.PutStringBuilder(b)
	for i, f := range findings {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString("[" + f.Severity + "] " + f.Message)
	}
	return bulkReply(b.String())
}

func helpReply(subcommands []string) Reply {
	items := make([]Reply, len(subcommands))
	for i, s := range subcommands {
		items[i] = bulkReply(s)
	}
	return arrayReply(items)
}

// sharedMonitor is the process-wide pressure/allocator-usage sampler
// MEMORY STATS and MEMORY DOCTOR read from, if the host process has
// started one via SetPressureMonitor.
var sharedMonitor *memaccount.Monitor

// SetPressureMonitor installs the monitor MEMORY STATS/MEMORY DOCTOR
// consult for allocator-usage figures. Passing nil reverts to
// "no allocator data available" (STATS then reports zeroed allocator
// fields; DOCTOR's empty rule fires unconditionally).
func SetPressureMonitor(m *memaccount.Monitor) {
	sharedMonitor = m
}
