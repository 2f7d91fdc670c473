// Package mapper turns a stream of bundle records into a module loader
// mapping persisted in a JSON, JS or HTML file.
//
// A Mapper goes through four states: open, accepting, finalizing and closed.
// Records are accepted in memory only. Finalize runs exactly once and hands
// the accumulated data to the writer chosen by the format:
//
//	m, err := mapper.JSON("config/local.json",
//		mapper.WithPrefix("http://static.company-cdn.com/javascript/"))
//	if err != nil {
//		return err
//	}
//
//	for _, rec := range records {
//		if err := m.Accept(rec); err != nil {
//			return err
//		}
//	}
//
//	return m.Finalize(ctx)
//
// Consume wraps the same lifecycle around a channel: it drains the channel,
// finalizes when the channel is closed and reports the result to the
// completion handler.
//
// Several mappers writing the same file are not coordinated; the last write
// wins.
package mapper
