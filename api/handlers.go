package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"garden-api/domain"
)

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, zones Zones, quests Checklist, weather WeatherSource, identifier Identifier, deduper Deduper, logger *log.Logger) {
	e.GET("/api/zones", getZones(zones, logger))
	e.POST("/api/zones", postZones(zones, deduper))
	e.GET("/api/quests", getQuests(quests))
	e.POST("/api/quests/:index/toggle", postQuestToggle(quests))
	e.GET("/api/weather", getWeather(weather))
	e.POST("/api/identify", postIdentify(identifier), GzipRequestMiddleware())
	e.GET("/healthz", healthz())
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}

func getZones(zones Zones, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		ctx := c.Request().Context()
		metrics, spanCtx := newZoneRequestMetrics(ctx, logger)
		c.SetRequest(c.Request().WithContext(spanCtx))
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		area := domain.AreaAll
		if raw := c.QueryParam("area"); raw != "" && raw != string(domain.AreaAll) {
			parsed, ok := domain.ParseArea(raw)
			if !ok {
				metrics.SetErrorStage("invalid_area")
				err = c.String(http.StatusBadRequest, "invalid area")
				return err
			}
			area = parsed
		}
		query := c.QueryParam("q")
		metrics.SetFilter(string(area), query != "")

		filterStart := time.Now()
		visible := domain.FilterZones(zones.Zones(), area, query)
		metrics.ObserveFilter(time.Since(filterStart))
		metrics.SetZonesReturned(len(visible))

		encodeStart := time.Now()
		err = c.JSON(http.StatusOK, zonesResponse{Zones: visible})
		metrics.ObserveEncode(time.Since(encodeStart))
		if err != nil {
			metrics.SetErrorStage("encode_response")
		}
		return err
	}
}

func postZones(zones Zones, deduper Deduper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		lr := io.LimitReader(c.Request().Body, postZoneMaxSize)
		dec := sonic.ConfigStd.NewDecoder(lr)
		dec.DisallowUnknownFields()

		var req createZoneRequest
		if err := dec.Decode(&req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}

		area, ok := domain.ParseArea(req.Area)
		if !ok {
			return c.String(http.StatusBadRequest, "invalid area")
		}

		key := c.Request().Header.Get("Idempotency-Key")
		if deduper != nil && key != "" {
			added, err := deduper.Add(ctx, key)
			if err != nil {
				// Dedupe is best-effort; a redis outage must not block creates.
				c.Logger().Warnf("deduper add failed: %v", err)
			} else if !added {
				return c.String(http.StatusConflict, "duplicate request")
			}
		}

		zone, err := zones.Create(ctx, domain.CreateZoneInput{
			Name:           req.Name,
			Area:           area,
			Type:           req.Type,
			Sun:            req.Sun,
			Emoji:          req.Emoji,
			Tags:           req.Tags,
			SuggestionName: req.SuggestionName,
		})
		if err != nil {
			if deduper != nil && key != "" {
				_ = deduper.Remove(ctx, key)
			}
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to save zone")
		}
		return c.JSON(http.StatusCreated, zone)
	}
}

func getQuests(quests Checklist) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, questsResponseFrom(quests.Snapshot()))
	}
}

func postQuestToggle(quests Checklist) echo.HandlerFunc {
	return func(c echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return c.String(http.StatusBadRequest, "invalid quest index")
		}

		flags, err := quests.Toggle(c.Request().Context(), index)
		if err != nil {
			var indexErr InvalidQuestIndexError
			if errors.As(err, &indexErr) {
				return c.String(http.StatusBadRequest, indexErr.Error())
			}
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "failed to save checklist")
		}
		return c.JSON(http.StatusOK, questsResponseFrom(flags))
	}
}

// questsResponseFrom lays the static quests out in display order while
// keeping every flag addressed by its original list position.
func questsResponseFrom(flags domain.Checklist) questsResponse {
	quests := domain.Quests()
	views := make([]questView, 0, len(quests))
	for _, idx := range domain.QuestDisplayOrder(quests) {
		done := idx < len(flags) && flags[idx]
		views = append(views, questView{
			Index:     idx,
			Text:      quests[idx].Text,
			Frequency: quests[idx].Frequency,
			Done:      done,
		})
	}
	return questsResponse{
		Quests:            views,
		CompletedCount:    flags.CompletedCount(),
		CompletionPercent: flags.CompletionPercent(),
	}
}

func getWeather(weather WeatherSource) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, weather.Current())
	}
}

func postIdentify(identifier Identifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		lr := io.LimitReader(c.Request().Body, postIdentifyMaxSize)
		dec := sonic.ConfigStd.NewDecoder(lr)
		dec.DisallowUnknownFields()

		var req identifyRequest
		if err := dec.Decode(&req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		if req.ImageBase64 == "" {
			return c.String(http.StatusBadRequest, "missing image")
		}

		suggestions, err := identifier.Identify(c.Request().Context(), req.ImageBase64)
		if err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusBadGateway, "identification failed")
		}
		return c.JSON(http.StatusOK, identifyResponse{Suggestions: suggestions})
	}
}
