// Package provider defines the pull-based Iterator used wherever the client
// produces a finite sequence lazily: pages of a list endpoint, or fixed-size
// chunks of a file being uploaded.
//
// Iterators are single-pass and not restartable. The consumer calls Next until
// it reports exhaustion or an error, then calls Close.
//
//	it, err := client.Transcript.Pages(ctx, params)
//	if err != nil {
//	    return err
//	}
//	defer it.Close()
//	for {
//	    page, ok, err := it.Next(ctx)
//	    if err != nil || !ok {
//	        break
//	    }
//	    ...
//	}
package provider
