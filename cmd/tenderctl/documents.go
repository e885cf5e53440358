package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"chainfly-client/application/commands"
	"chainfly-client/application/queries"
	"chainfly-client/domain/records"
	pkgerrors "chainfly-client/pkg/errors"
)

var documentFilters struct {
	documentType string
	status       string
	tenderID     string
}

var uploadFlags struct {
	tenderID     string
	documentType string
}

var downloadFlags struct {
	zipName string
	all     bool
}

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List, upload and bundle tender documents",
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.syncer.SyncDocuments(context.Background()); err != nil {
			return userError(err)
		}

		a.session.DocumentFilters = queries.DocumentCriteria{
			DocumentType: documentFilters.documentType,
			Status:       documentFilters.status,
			TenderID:     documentFilters.tenderID,
		}

		docs := a.session.FilteredDocuments()
		if len(docs) == 0 {
			fmt.Println("No documents match.")
			return nil
		}
		for _, d := range docs {
			fmt.Printf("%-12s  %-10s  %-12s  %8d  %s\n",
				d.ID, d.Status, d.DocumentType, d.FileSize, d.Filename)
		}
		return nil
	},
}

var documentsUploadCmd = &cobra.Command{
	Use:   "upload <file.pdf> [more.pdf ...]",
	Short: "Upload PDF documents for a tender",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		files := make([]commands.FileInput, 0, len(args))
		opened := make([]*os.File, 0, len(args))
		defer func() {
			for _, f := range opened {
				f.Close()
			}
		}()

		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("cannot open %s: %w", path, err)
			}
			opened = append(opened, f)

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("cannot stat %s: %w", path, err)
			}
			files = append(files, commands.FileInput{
				Filename: filepath.Base(path),
				Size:     info.Size(),
				Content:  f,
			})
		}

		handler := commands.NewUploadDocumentsHandler(a.client, a.session, a.logger)
		uploaded, err := handler.Handle(context.Background(), commands.UploadDocumentsCommand{
			TenderID:     uploadFlags.tenderID,
			DocumentType: uploadFlags.documentType,
			Files:        files,
		})
		if err != nil {
			return userError(err)
		}

		fmt.Printf("Uploaded %d document(s).\n", len(uploaded))
		return nil
	},
}

var documentsDownloadCmd = &cobra.Command{
	Use:   "download <document-id> [more-ids ...]",
	Short: "Bundle documents into a zip archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !downloadFlags.all && len(args) == 0 {
			return fmt.Errorf("select documents by id or pass --all")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := context.Background()
		if _, err := a.syncer.SyncDocuments(ctx); err != nil {
			return userError(err)
		}

		var selected []records.Document
		if downloadFlags.all {
			selected = a.session.Documents.All()
		} else {
			for _, id := range args {
				doc, ok := a.session.Documents.Get(id)
				if !ok {
					return userError(pkgerrors.NewNotFoundError("document " + id))
				}
				selected = append(selected, doc)
			}
		}

		result, err := a.downloadHandler().Handle(ctx, commands.DownloadDocumentsCommand{
			ZipName:   downloadFlags.zipName,
			Documents: selected,
		})
		if err != nil {
			return userError(err)
		}

		fmt.Printf("Wrote %s (%d of %d documents included).\n",
			result.Location, len(result.Archive.Included), len(selected))
		return nil
	},
}

func init() {
	documentsListCmd.Flags().StringVar(&documentFilters.documentType, "type", "", "exact document type match")
	documentsListCmd.Flags().StringVar(&documentFilters.status, "status", "", "exact status match")
	documentsListCmd.Flags().StringVar(&documentFilters.tenderID, "tender", "", "exact tender id match")

	documentsUploadCmd.Flags().StringVar(&uploadFlags.tenderID, "tender", "", "tender the documents belong to")
	documentsUploadCmd.Flags().StringVar(&uploadFlags.documentType, "type", "", "document type label")

	documentsDownloadCmd.Flags().StringVar(&downloadFlags.zipName, "name", "", "archive name without the .zip extension")
	documentsDownloadCmd.Flags().BoolVar(&downloadFlags.all, "all", false, "bundle every stored document")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsUploadCmd)
	documentsCmd.AddCommand(documentsDownloadCmd)
}
